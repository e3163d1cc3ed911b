package handler

import (
	"strconv"
	"strings"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// bindAndValidate decodes the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Invalid request body"), err.Error())
	}

	return c.Validate(req)
}

// paramUUID parses a path parameter as a UUID.
func paramUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("Invalid " + name + " format"))
	}

	return id, nil
}

// queryUUID parses an optional UUID query parameter.
func queryUUID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be a valid UUID"))
	}

	return &id, nil
}

// queryDecimal parses an optional decimal query parameter.
func queryDecimal(c echo.Context, name string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be a number"))
	}

	return &d, nil
}

func queryBool(c echo.Context, name string) bool {
	v, _ := strconv.ParseBool(c.QueryParam(name))

	return v
}

func queryInt(c echo.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return fallback
	}

	return v
}

// pagination reads page and limit, clamping them to sane bounds.
func pagination(c echo.Context) entity.Pagination {
	page := max(queryInt(c, "page", constants.DefaultPage), 1)
	limit := queryInt(c, "limit", constants.DefaultPageSize)
	if limit < 1 {
		limit = constants.DefaultPageSize
	}

	return entity.Pagination{Page: page, Limit: min(limit, constants.MaxPageSize)}
}

// callerID returns the authenticated user, if any.
func callerID(c echo.Context) (uuid.UUID, bool) {
	return middleware.GetUserID(c)
}

// currentUserID returns the authenticated user or ErrUnauthorized.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return userID, nil
}

// currentActor returns the authenticated caller or ErrUnauthorized.
func currentActor(c echo.Context) (usecase.Actor, error) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return usecase.Actor{}, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return actor, nil
}

// formFiles collects the uploaded files of a multipart field.
// The returned cleanup closes every opened file.
func formFiles(c echo.Context, field string, maxFiles int) ([]*usecase.FileUpload, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, func() {}, errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("Expected multipart form data"))
	}

	headers := form.File[field]
	if len(headers) == 0 {
		return nil, func() {}, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("no files uploaded in '" + field + "'"))
	}
	if len(headers) > maxFiles {
		return nil, func() {}, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("at most " + strconv.Itoa(maxFiles) + " files"))
	}

	var closers []func() error
	cleanup := func() {
		for _, closeFn := range closers {
			_ = closeFn()
		}
	}

	uploads := make([]*usecase.FileUpload, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			cleanup()

			return nil, func() {}, errors.Wrap(err, "failed to open upload")
		}
		closers = append(closers, file.Close)
		uploads = append(uploads, &usecase.FileUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get(echo.HeaderContentType),
			Size:        header.Size,
			Content:     file,
		})
	}

	return uploads, cleanup, nil
}
