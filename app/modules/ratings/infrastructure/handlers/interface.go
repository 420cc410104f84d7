package ratingshandlers

import (
	"context"
	"net/http"

	ratingsevents "github.com/XdrBOBX/rating-widget/app/modules/ratings/events"
)

// Handlers groups the ratings HTTP endpoints and bus consumers.
type Handlers interface {
	HandleSummary(w http.ResponseWriter, r *http.Request)
	HandleRecent(w http.ResponseWriter, r *http.Request)
	HandleSubmit(w http.ResponseWriter, r *http.Request)

	HandleRatingSubmitted(ctx context.Context, payload *ratingsevents.RatingSubmittedPayloadV1) error
}
