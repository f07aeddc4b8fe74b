package utils

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsValidObjectID reports whether s is a well-formed 24-char hex ObjectID.
func IsValidObjectID(s string) bool {
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}
