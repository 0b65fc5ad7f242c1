package services

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrNoImages        = errors.New("at least one image is required")
	ErrEmailTaken      = errors.New("email already registered")
	ErrBadCredentials  = errors.New("invalid credentials")
	ErrCaptchaFailed   = errors.New("captcha verification failed")
	ErrTooManyPromoted   = errors.New("at most 3 listings can be promoted")
	ErrNotApproved       = errors.New("listing must be approved")
	ErrDuplicatePromoted = errors.New("duplicate listing id in promoted set")

	ErrInvalidCategory     = errors.New("invalid service category")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidEntityType   = errors.New("invalid entity type")
	ErrInvalidContactType  = errors.New("invalid contact type")
	ErrInvalidPropertyType = errors.New("invalid property type")
	ErrInvalidRentalType   = errors.New("invalid rental type")
	ErrInvalidPriceRange   = errors.New("invalid price range")
)
