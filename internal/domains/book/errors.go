package book

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-catalog/internal/shared/response"
	"library-catalog/pkg/logger"
)

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrInvalidBookID    = errors.New("invalid book id")
	ErrAuthorNotFound   = errors.New("author not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrISBNExists       = errors.New("ISBN already exists")
	ErrInvalidISBN      = errors.New("invalid ISBN")
	ErrInvalidInventory = errors.New("available copies cannot exceed total copies")
)

var bookErrorMap = map[error]struct {
	Status  int
	Code    string
	Message string
}{
	ErrBookNotFound: {
		Status:  http.StatusNotFound,
		Code:    "BOOK_NOT_FOUND",
		Message: "The specified book does not exist",
	},
	ErrInvalidBookID: {
		Status:  http.StatusBadRequest,
		Code:    "INVALID_BOOK_ID",
		Message: "The book id is not a valid identifier",
	},
	ErrAuthorNotFound: {
		Status:  http.StatusBadRequest,
		Code:    "AUTHOR_NOT_FOUND",
		Message: "The specified author does not exist",
	},
	ErrCategoryNotFound: {
		Status:  http.StatusBadRequest,
		Code:    "CATEGORY_NOT_FOUND",
		Message: "The specified category does not exist",
	},
	ErrISBNExists: {
		Status:  http.StatusConflict,
		Code:    "ISBN_EXISTS",
		Message: "This ISBN is already used by another book",
	},
	ErrInvalidISBN: {
		Status:  http.StatusBadRequest,
		Code:    "INVALID_ISBN",
		Message: "The ISBN format or check digit is invalid",
	},
	ErrInvalidInventory: {
		Status:  http.StatusBadRequest,
		Code:    "INVALID_INVENTORY",
		Message: "Available copies cannot exceed total copies",
	},
}

// HandleBookError translates service errors into HTTP responses.
// Returns true when err was non-nil and a response has been written.
func HandleBookError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input data", verrs)
		return true
	}

	for sentinel, cfg := range bookErrorMap {
		if errors.Is(err, sentinel) {
			response.ErrorResponse(c, cfg.Status, cfg.Code, cfg.Message)
			return true
		}
	}

	logger.Error("unhandled book error", err)
	response.InternalServerError(c, "An unexpected error occurred")
	return true
}
