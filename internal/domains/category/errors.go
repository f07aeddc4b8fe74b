package category

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-catalog/internal/shared/response"
	"library-catalog/pkg/logger"
)

var (
	ErrCategoryNotFound         = errors.New("category not found")
	ErrInvalidCategoryID        = errors.New("invalid category id")
	ErrCategoryHasBooks         = errors.New("category has books and cannot be deleted")
	ErrCategoryHasSubcategories = errors.New("category has subcategories and cannot be deleted")
	ErrParentNotFound           = errors.New("parent category not found")
	ErrParentCycle              = errors.New("category cannot be its own ancestor")
	ErrInvalidSlug              = errors.New("slug must contain at least one alphanumeric character")
)

var categoryErrorMap = map[error]struct {
	Status  int
	Code    string
	Message string
}{
	ErrCategoryNotFound: {
		Status:  http.StatusNotFound,
		Code:    "CATEGORY_NOT_FOUND",
		Message: "The specified category does not exist",
	},
	ErrInvalidCategoryID: {
		Status:  http.StatusBadRequest,
		Code:    "INVALID_CATEGORY_ID",
		Message: "The category id is not a valid identifier",
	},
	ErrCategoryHasBooks: {
		Status:  http.StatusBadRequest,
		Code:    "CATEGORY_HAS_BOOKS",
		Message: "The category still has books in the catalog and cannot be deleted",
	},
	ErrCategoryHasSubcategories: {
		Status:  http.StatusBadRequest,
		Code:    "CATEGORY_HAS_SUBCATEGORIES",
		Message: "The category still has subcategories and cannot be deleted",
	},
	ErrParentNotFound: {
		Status:  http.StatusBadRequest,
		Code:    "PARENT_NOT_FOUND",
		Message: "The specified parent category does not exist",
	},
	ErrParentCycle: {
		Status:  http.StatusBadRequest,
		Code:    "PARENT_CYCLE",
		Message: "The parent assignment would create a cycle in the category tree",
	},
	ErrInvalidSlug: {
		Status:  http.StatusBadRequest,
		Code:    "INVALID_SLUG",
		Message: "The slug must contain at least one alphanumeric character",
	},
}

// HandleCategoryError translates service errors into HTTP responses.
// Returns true when err was non-nil and a response has been written.
func HandleCategoryError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input data", verrs)
		return true
	}

	for sentinel, cfg := range categoryErrorMap {
		if errors.Is(err, sentinel) {
			response.ErrorResponse(c, cfg.Status, cfg.Code, cfg.Message)
			return true
		}
	}

	logger.Error("unhandled category error", err)
	response.InternalServerError(c, "An unexpected error occurred")
	return true
}
