// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"errors"
	"maps"
	"net/http"
	"time"

	"github.com/astfn/as-enum/pkg/serializer"
	"github.com/google/uuid"

	aserrors "github.com/astfn/as-enum/pkg/errors"
)

// ErrorResponse is the JSON body of every error returned by the API.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// WriteError writes a structured error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code aserrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr maps err onto an error response. StructuredError codes
// select the status and their context is merged into details; any other
// error is reported as INTERNAL with fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, details map[string]any) {
	var se *aserrors.StructuredError
	if errors.As(err, &se) {
		merged := mergeDetails(se.Context, details)
		if se.Cause != nil {
			merged = mergeDetails(merged, map[string]any{"error": se.Cause.Error()})
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message, retryableFromCode(se.Code), merged)
		return
	}

	merged := details
	if err != nil {
		merged = mergeDetails(details, map[string]any{"error": err.Error()})
	}
	WriteError(w, r, http.StatusInternalServerError, aserrors.ErrCodeInternal, fallbackMessage,
		retryableFromCode(aserrors.ErrCodeInternal), merged)
}

// HTTPStatusFromCode returns the HTTP status for an error code.
func HTTPStatusFromCode(code aserrors.ErrorCode) int {
	switch code {
	case aserrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case aserrors.ErrCodeNotFound:
		return http.StatusNotFound
	case aserrors.ErrCodeConflict:
		return http.StatusConflict
	case aserrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case aserrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case aserrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case aserrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case aserrors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code aserrors.ErrorCode) bool {
	switch code {
	case aserrors.ErrCodeTimeout, aserrors.ErrCodeUnavailable,
		aserrors.ErrCodeRateLimitExceeded, aserrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}
