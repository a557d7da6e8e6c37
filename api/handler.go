package api

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/anyproto/any-sync/metric"
	"go.uber.org/zap"

	"github.com/talkdeck/talkdeck-push-server/dispatcher"
	"github.com/talkdeck/talkdeck-push-server/domain"
)

const maxBodySize = 64 << 10

var errUnauthenticated = errors.New("unauthenticated")

type handler struct {
	dispatcher dispatcher.Dispatcher
	metric     metric.Metric
	token      string
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (h *handler) SendCustom(w http.ResponseWriter, r *http.Request) {
	var (
		st  = time.Now()
		req dispatcher.CustomRequest
		err error
	)
	defer func() {
		h.metric.RequestLog(r.Context(), "push.sendCustom",
			metric.TotalDur(time.Since(st)),
			zap.String("addr", r.RemoteAddr),
			zap.String("topic", req.Topic.String()),
			zap.Error(err),
		)
	}()
	if err = decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := h.dispatcher.SendCustom(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handler) SendToDevice(w http.ResponseWriter, r *http.Request) {
	var (
		st  = time.Now()
		req dispatcher.DeviceRequest
		err error
	)
	defer func() {
		h.metric.RequestLog(r.Context(), "push.sendToDevice",
			metric.TotalDur(time.Since(st)),
			zap.String("addr", r.RemoteAddr),
			zap.Error(err),
		)
	}()
	if err = decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := h.dispatcher.SendToDevice(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handler) QuickQuestion(w http.ResponseWriter, r *http.Request) {
	var (
		st  = time.Now()
		err error
	)
	defer func() {
		h.metric.RequestLog(r.Context(), "push.quickQuestion",
			metric.TotalDur(time.Since(st)),
			zap.String("addr", r.RemoteAddr),
			zap.Error(err),
		)
	}()
	res, err := h.dispatcher.QuickQuestionNow(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var (
		st  = time.Now()
		req dispatcher.TopicRequest
		err error
	)
	defer func() {
		h.metric.RequestLog(r.Context(), "push.subscribe",
			metric.TotalDur(time.Since(st)),
			zap.String("addr", r.RemoteAddr),
			zap.String("topic", req.Topic.String()),
			zap.Error(err),
		)
	}()
	if err = decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := h.dispatcher.Subscribe(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var (
		st  = time.Now()
		req dispatcher.TopicRequest
		err error
	)
	defer func() {
		h.metric.RequestLog(r.Context(), "push.unsubscribe",
			metric.TotalDur(time.Since(st)),
			zap.String("addr", r.RemoteAddr),
			zap.String("topic", req.Topic.String()),
			zap.Error(err),
		)
	}()
	if err = decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := h.dispatcher.Unsubscribe(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handler) auth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.token != "" {
			got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) != 1 {
				writeError(w, errUnauthenticated)
				return
			}
		}
		next(w, r)
	})
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodySize))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: malformed request body: %v", domain.ErrInvalidArgument, err)
	}
	return nil
}

func writeError(w http.ResponseWriter, err error) {
	var (
		body   errorBody
		status int
	)
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		status, body.Error.Code = http.StatusBadRequest, "invalid-argument"
	case errors.Is(err, errUnauthenticated):
		status, body.Error.Code = http.StatusUnauthorized, "unauthenticated"
	default:
		status, body.Error.Code = http.StatusInternalServerError, "internal"
	}
	body.Error.Message = err.Error()
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn("write response error", zap.Error(err))
	}
}
