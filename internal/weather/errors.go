package weather

import (
	"errors"
	"fmt"
)

// Product - продукт КМА, к которому относится вызов
type Product string

const (
	ProductCurrent  Product = "current"
	ProductForecast Product = "forecast"
)

// Kind классифицирует причину сбоя вызова погодного сервиса
type Kind int

const (
	KindTransport Kind = iota + 1
	KindTimeout
	KindStatus
	KindDecode
	KindUpstream
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindTimeout:
		return "timeout"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	case KindUpstream:
		return "upstream"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// Sentinel-ошибки для errors.Is
var (
	ErrTimeout  = errors.New("weather: request timed out")
	ErrStatus   = errors.New("weather: unexpected http status")
	ErrDecode   = errors.New("weather: malformed payload")
	ErrUpstream = errors.New("weather: upstream reported an error")
	ErrParse    = errors.New("weather: unparsable value")
)

// Error - типизированная ошибка погодного шлюза
type Error struct {
	Product Product
	Kind    Kind
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("weather %s: %s: %v", e.Product, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is позволяет сравнивать с sentinel-ошибками по Kind
func (e *Error) Is(target error) bool {
	switch target {
	case ErrTimeout:
		return e.Kind == KindTimeout
	case ErrStatus:
		return e.Kind == KindStatus
	case ErrDecode:
		return e.Kind == KindDecode
	case ErrUpstream:
		return e.Kind == KindUpstream
	case ErrParse:
		return e.Kind == KindParse
	}
	return false
}

func newError(product Product, kind Kind, err error) *Error {
	return &Error{Product: product, Kind: kind, Err: err}
}

// Reason возвращает короткую метку причины сбоя для метрик и логов
func Reason(err error) string {
	var werr *Error
	if errors.As(err, &werr) {
		return werr.Kind.String()
	}
	return "unknown"
}
