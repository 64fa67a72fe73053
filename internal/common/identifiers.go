package common

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseObjectID validates a path/query identifier before any data access.
// name shows up in the error message ("video", "playlist", ...).
func ParseObjectID(raw, name string) (primitive.ObjectID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return primitive.NilObjectID, NewApiError(KindInvalidIdentifier, "missing "+name+" ID")
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, NewApiError(KindInvalidIdentifier, "invalid "+name+" ID")
	}
	return id, nil
}

// CallerID resolves the authenticated caller's id from the context claims.
func CallerID(ctx context.Context) (primitive.ObjectID, error) {
	claims := CallerFromContext(ctx)
	if claims == nil {
		return primitive.NilObjectID, NewApiError(KindUnauthorized, "user not authenticated")
	}
	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, NewApiError(KindUnauthorized, "invalid caller identity")
	}
	return id, nil
}
