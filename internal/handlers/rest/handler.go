package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/errors"
	"github.com/KirkDiggler/armybook-api/internal/orchestrators/armybook"
)

const (
	headerContentType        = "Content-Type"
	headerContentDisposition = "Content-Disposition"
	headerCacheControl       = "Cache-Control"
	headerCacheState         = "X-Cache-State"
	contentTypeJSON          = "application/json; charset=utf-8"
	pdfCacheControl          = "public, max-age=60"

	maxImportBody = 16 << 20
)

type handler struct {
	armyBookService armybook.Service
}

type bookResponse struct {
	ArmyBook *entities.ArmyBook       `json:"armyBook"`
	Skipped  []entities.SkippedRecord `json:"skipped,omitempty"`
}

type importRequest struct {
	ArmyBook *entities.ArmyBook `json:"armyBook"`
	CostMode entities.CostMode  `json:"costMode,omitempty"`
}

func (h *handler) getArmyBook(w http.ResponseWriter, r *http.Request) error {
	input := &armybook.GetArmyBookInput{
		FlavouredUID: chi.URLParam(r, paramUID),
		RequesterID:  r.Header.Get(headerRequesterID),
	}

	q := r.URL.Query()
	if raw := q.Get("targetGameSystemId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return errors.InvalidArgumentf("targetGameSystemId %q is not a number", raw)
		}
		input.TargetGameSystemID = id
	}
	if raw := q.Get("authoritative"); raw != "" {
		authoritative, err := strconv.ParseBool(raw)
		if err != nil {
			return errors.InvalidArgumentf("authoritative %q is not a boolean", raw)
		}
		input.AuthoritativeCosts = authoritative
	}

	out, err := h.armyBookService.GetArmyBook(r.Context(), input)
	if err != nil {
		return err
	}

	respondWithJSON(w, http.StatusOK, bookResponse{ArmyBook: out.ArmyBook, Skipped: out.Skipped})
	return nil
}

func (h *handler) getPdf(w http.ResponseWriter, r *http.Request) error {
	out, err := h.armyBookService.GetPdf(r.Context(), &armybook.GetPdfInput{
		FlavouredUID: chi.URLParam(r, paramUID),
		RequesterID:  r.Header.Get(headerRequesterID),
	})
	if err != nil {
		return err
	}

	w.Header().Set(headerContentType, out.ContentType)
	w.Header().Set(headerContentDisposition, fmt.Sprintf("inline; filename=%q", out.Filename))
	w.Header().Set(headerCacheControl, pdfCacheControl)
	w.Header().Set(headerCacheState, string(out.CacheState))
	w.Header().Set("Content-Length", strconv.Itoa(len(out.Bytes)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out.Bytes) // nolint:errcheck // client went away
	return nil
}

func (h *handler) recalculateCosts(w http.ResponseWriter, r *http.Request) error {
	requester, err := requireRequester(r)
	if err != nil {
		return err
	}

	out, err := h.armyBookService.RecalculateCosts(r.Context(), &armybook.RecalculateCostsInput{
		UID:         chi.URLParam(r, paramUID),
		RequesterID: requester,
	})
	if err != nil {
		return err
	}

	respondWithJSON(w, http.StatusOK, bookResponse{ArmyBook: out.ArmyBook, Skipped: out.Skipped})
	return nil
}

func (h *handler) importArmyBook(w http.ResponseWriter, r *http.Request) error {
	requester, err := requireRequester(r)
	if err != nil {
		return err
	}

	var req importRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxImportBody)).Decode(&req); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid import body")
	}
	if req.ArmyBook == nil {
		return errors.InvalidArgument("armyBook is required")
	}

	out, err := h.armyBookService.ImportArmyBook(r.Context(), &armybook.ImportArmyBookInput{
		RequesterID: requester,
		ArmyBook:    req.ArmyBook,
		CostMode:    req.CostMode,
	})
	if err != nil {
		return err
	}

	respondWithJSON(w, http.StatusCreated, bookResponse{ArmyBook: out.ArmyBook, Skipped: out.Skipped})
	return nil
}
