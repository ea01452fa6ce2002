package idempotency

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev"
	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"encore.app/billing/model"
)

const Header = "X-Idempotency-Key"

// Middleware replays the stored response of a completed order or bill request
// when the client retries it with the same key, and rejects a retry that
// arrives while the first attempt is still running.
//
//encore:middleware target=tag:idempotency
func Middleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := requestKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}
	ctx := req.Context()
	bodyHash := payloadHash(req.Data().Payload)

	for attempt := 0; attempt < claimAttempts; attempt++ {
		startedAt := time.Now()
		claimErr := store.SetIfNotExists(ctx, key, processingEntry(bodyHash, startedAt))
		switch {
		case claimErr == nil:
			return run(ctx, req, next, key, bodyHash, startedAt)
		case !errors.Is(claimErr, cache.KeyExists):
			rlog.Error("failed to mark request as processing", "resource", key.Resource, "error", claimErr)
			return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to mark request as processing"}}
		}

		entry, cacheErr := store.Get(ctx, key)
		switch {
		case errors.Is(cacheErr, cache.Miss):
			// the holder failed and released the key after our claim
			continue
		case cacheErr != nil:
			rlog.Error("idempotency lookup failed", "resource", key.Resource, "error", cacheErr)
			return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"}}
		}
		return existing(ctx, req, next, key, bodyHash, entry)
	}

	rlog.Warn("idempotency key keeps changing hands", "resource", key.Resource, "key", key.Key)
	return middleware.Response{Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"}}
}

// claimAttempts bounds how often a request races a failing holder for its key.
const claimAttempts = 2

// existing handles a request whose key another attempt already claimed.
func existing(ctx context.Context, req middleware.Request, next middleware.Next, key model.IdempotencyKey, bodyHash string, entry model.IdempotencyCacheEntry) middleware.Response {
	if conflictErr := checkConflict(entry, bodyHash); conflictErr != nil {
		return middleware.Response{Err: conflictErr}
	}

	switch entry.Status {
	case model.IdempotencyProcessing:
		rlog.Info("duplicate request while processing", "resource", key.Resource, "key", key.Key)
		return middleware.Response{Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"}}
	case model.IdempotencyCompleted:
		if payload, ok := replay(entry, req.Data().API); ok {
			rlog.Info("replaying cached response", "resource", key.Resource, "key", key.Key)
			return middleware.Response{Payload: payload}
		}
		rlog.Warn("cached response unusable, processing again", "resource", key.Resource, "key", key.Key)
		startedAt := time.Now()
		if err := store.Set(ctx, key, processingEntry(bodyHash, startedAt)); err != nil {
			rlog.Error("failed to mark request as processing", "resource", key.Resource, "error", err)
			return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to mark request as processing"}}
		}
		return run(ctx, req, next, key, bodyHash, startedAt)
	default:
		rlog.Warn("unknown idempotency status, processing as new request", "key", key.Key, "status", entry.Status)
		return next(req)
	}
}

// requestKey scopes the client key to the method and path, so one key may be
// reused for an order and for the bill that follows it.
func requestKey(req middleware.Request) (model.IdempotencyKey, *errs.Error) {
	data := req.Data()
	var value string
	if data.Headers != nil {
		value = strings.TrimSpace(data.Headers.Get(Header))
	}
	if value == "" {
		return model.IdempotencyKey{}, &errs.Error{Code: errs.InvalidArgument, Message: Header + " header is required"}
	}

	resource := data.Path
	if data.Method != "" {
		resource = data.Method + " " + data.Path
	}
	return model.IdempotencyKey{Resource: resource, Key: value}, nil
}

func processingEntry(bodyHash string, startedAt time.Time) model.IdempotencyCacheEntry {
	return model.IdempotencyCacheEntry{
		Status:          model.IdempotencyProcessing,
		RequestBodyHash: bodyHash,
		CreatedAt:       startedAt,
	}
}

// run executes the request this caller holds the key for and records the outcome.
func run(ctx context.Context, req middleware.Request, next middleware.Next, key model.IdempotencyKey, bodyHash string, startedAt time.Time) middleware.Response {
	resp := next(req)
	if resp.Err != nil {
		// failed attempts may be retried with the same key
		if _, err := store.Delete(ctx, key); err != nil {
			rlog.Error("failed to clear idempotency entry", "resource", key.Resource, "error", err)
		}
		return resp
	}

	entry, err := completedEntry(resp.Payload, bodyHash, startedAt, time.Now())
	if err != nil {
		rlog.Error("failed to encode response for replay", "resource", key.Resource, "error", err)
		return resp
	}
	if err := store.Set(ctx, key, entry); err != nil {
		rlog.Error("failed to cache response", "resource", key.Resource, "error", err)
	}
	return resp
}

func completedEntry(payload any, bodyHash string, createdAt, updatedAt time.Time) (model.IdempotencyCacheEntry, error) {
	entry := model.IdempotencyCacheEntry{
		Status:          model.IdempotencyCompleted,
		RequestBodyHash: bodyHash,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
	if payload == nil {
		return entry, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return model.IdempotencyCacheEntry{}, err
	}
	entry.Response = raw
	return entry, nil
}

func checkConflict(entry model.IdempotencyCacheEntry, bodyHash string) *errs.Error {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"}
	}
	return nil
}

// replay decodes the cached JSON into the endpoint's response type.
func replay(entry model.IdempotencyCacheEntry, api *encore.APIDesc) (any, bool) {
	if len(entry.Response) == 0 || api == nil || api.ResponseType == nil {
		return nil, false
	}
	return decodeAs(entry.Response, api.ResponseType)
}

func decodeAs(raw json.RawMessage, typ reflect.Type) (any, bool) {
	if typ.Kind() != reflect.Pointer {
		return nil, false
	}
	value := reflect.New(typ.Elem()).Interface()
	if err := json.Unmarshal(raw, value); err != nil {
		rlog.Error("failed to decode cached response", "type", typ.String(), "error", err)
		return nil, false
	}
	return value, true
}

func payloadHash(payload any) string {
	if payload == nil {
		return ""
	}
	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request payload", "error", err)
		return ""
	}
	return hashing(body)
}

// hashing returns the hex MD5 of body, or "" for an empty body.
func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	sum := md5.Sum(body)
	return hex.EncodeToString(sum[:])
}
