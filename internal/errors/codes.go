package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeAborted            Code = "ABORTED"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"

	// CodeUpstream marks a failure of an external collaborator such as the
	// point-cost service or the PDF renderer.
	CodeUpstream Code = "UPSTREAM_FAILURE"
)

type transport struct {
	grpc codes.Code
	http int
}

// transports is the single source for both wire mappings. Codes missing
// here fall back to Internal / 500.
var transports = map[Code]transport{
	CodeOK:                 {codes.OK, http.StatusOK},
	CodeCanceled:           {codes.Canceled, http.StatusRequestTimeout},
	CodeInvalidArgument:    {codes.InvalidArgument, http.StatusBadRequest},
	CodeDeadlineExceeded:   {codes.DeadlineExceeded, http.StatusGatewayTimeout},
	CodeNotFound:           {codes.NotFound, http.StatusNotFound},
	CodeAlreadyExists:      {codes.AlreadyExists, http.StatusConflict},
	CodePermissionDenied:   {codes.PermissionDenied, http.StatusForbidden},
	CodeResourceExhausted:  {codes.ResourceExhausted, http.StatusTooManyRequests},
	CodeFailedPrecondition: {codes.FailedPrecondition, http.StatusPreconditionFailed},
	CodeAborted:            {codes.Aborted, http.StatusConflict},
	CodeOutOfRange:         {codes.OutOfRange, http.StatusBadRequest},
	CodeUnimplemented:      {codes.Unimplemented, http.StatusNotImplemented},
	CodeInternal:           {codes.Internal, http.StatusInternalServerError},
	CodeUnavailable:        {codes.Unavailable, http.StatusServiceUnavailable},
	CodeDataLoss:           {codes.DataLoss, http.StatusInternalServerError},
	CodeUnauthenticated:    {codes.Unauthenticated, http.StatusUnauthorized},
	CodeUpstream:           {codes.Unavailable, http.StatusBadGateway},
}

// fromGRPC is the reverse of transports. Upstream shares Unavailable on the
// wire and is restored from the ErrorInfo reason instead.
var fromGRPC = func() map[codes.Code]Code {
	m := make(map[codes.Code]Code, len(transports))
	for code, t := range transports {
		if code == CodeUpstream {
			continue
		}
		m[t.grpc] = code
	}
	return m
}()

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the corresponding HTTP status code
func (c Code) HTTPStatus() int {
	if t, ok := transports[c]; ok {
		return t.http
	}
	return http.StatusInternalServerError
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	if t, ok := transports[c]; ok {
		return t.grpc
	}
	return codes.Unknown
}

func codeFromGRPC(c codes.Code) Code {
	if code, ok := fromGRPC[c]; ok {
		return code
	}
	return CodeInternal
}
