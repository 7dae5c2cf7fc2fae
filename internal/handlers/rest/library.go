package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/errors"
	"github.com/KirkDiggler/armybook-api/internal/orchestrators/armybook"
)

const (
	listCacheControl = "public, max-age=600"
	maxMetadataBody  = 1 << 20
)

type listResponse struct {
	ArmyBooks []*entities.ArmyBookSummary `json:"armyBooks"`
}

type summaryResponse struct {
	ArmyBook *entities.ArmyBookSummary `json:"armyBook"`
}

type detachmentRequest struct {
	ParentArmyBookUID string   `json:"parentArmyBookId"`
	Name              string   `json:"name"`
	Hint              string   `json:"hint"`
	GameSystemID      int      `json:"gameSystemId"`
	Clones            []string `json:"clones"`
	Syncs             []string `json:"syncs"`
}

func (h *handler) listArmyBooks(w http.ResponseWriter, r *http.Request) error {
	slug := r.URL.Query().Get("gameSystemSlug")
	if slug == "" {
		return errors.InvalidArgument("gameSystemSlug query parameter is required")
	}

	out, err := h.armyBookService.ListArmyBooks(r.Context(), &armybook.ListArmyBooksInput{GameSystemSlug: slug})
	if err != nil {
		return err
	}

	w.Header().Set(headerCacheControl, listCacheControl)
	respondWithJSON(w, http.StatusOK, listResponse{ArmyBooks: out.ArmyBooks})
	return nil
}

func (h *handler) listMyArmyBooks(w http.ResponseWriter, r *http.Request) error {
	requester, err := requireRequester(r)
	if err != nil {
		return err
	}

	out, err := h.armyBookService.ListMyArmyBooks(r.Context(), &armybook.ListMyArmyBooksInput{RequesterID: requester})
	if err != nil {
		return err
	}

	respondWithJSON(w, http.StatusOK, listResponse{ArmyBooks: out.ArmyBooks})
	return nil
}

func (h *handler) getMyArmyBook(w http.ResponseWriter, r *http.Request) error {
	requester, err := requireRequester(r)
	if err != nil {
		return err
	}

	out, err := h.armyBookService.GetArmyBook(r.Context(), &armybook.GetArmyBookInput{
		FlavouredUID: chi.URLParam(r, paramUID),
		RequesterID:  requester,
		OwnedOnly:    true,
	})
	if err != nil {
		return err
	}

	respondWithJSON(w, http.StatusOK, bookResponse{ArmyBook: out.ArmyBook, Skipped: out.Skipped})
	return nil
}

func (h *handler) createDetachment(w http.ResponseWriter, r *http.Request) error {
	requester, err := requireRequester(r)
	if err != nil {
		return err
	}

	var req detachmentRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMetadataBody)).Decode(&req); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid detachment body")
	}

	out, err := h.armyBookService.CreateDetachment(r.Context(), &armybook.CreateDetachmentInput{
		RequesterID:  requester,
		ParentUID:    req.ParentArmyBookUID,
		Name:         req.Name,
		Hint:         req.Hint,
		GameSystemID: req.GameSystemID,
		CloneUnitIDs: req.Clones,
		SyncUnitIDs:  req.Syncs,
	})
	if err != nil {
		return err
	}

	respondWithJSON(w, http.StatusCreated, bookResponse{ArmyBook: out.ArmyBook})
	return nil
}

func (h *handler) updateArmyBook(w http.ResponseWriter, r *http.Request) error {
	requester, err := requireRequester(r)
	if err != nil {
		return err
	}

	var metadata entities.ArmyBookMetadata
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMetadataBody)).Decode(&metadata); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid update body")
	}

	out, err := h.armyBookService.UpdateArmyBook(r.Context(), &armybook.UpdateArmyBookInput{
		UID:         chi.URLParam(r, paramUID),
		RequesterID: requester,
		Metadata:    metadata,
	})
	if err != nil {
		return err
	}

	respondWithJSON(w, http.StatusOK, bookResponse{ArmyBook: out.ArmyBook})
	return nil
}

func (h *handler) deleteArmyBook(w http.ResponseWriter, r *http.Request) error {
	requester, err := requireRequester(r)
	if err != nil {
		return err
	}

	err = h.armyBookService.DeleteArmyBook(r.Context(), &armybook.DeleteArmyBookInput{
		UID:         chi.URLParam(r, paramUID),
		RequesterID: requester,
	})
	if err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *handler) checkOwnership(w http.ResponseWriter, r *http.Request) error {
	requester, err := requireRequester(r)
	if err != nil {
		return err
	}

	out, err := h.armyBookService.CheckOwnership(r.Context(), &armybook.CheckOwnershipInput{
		UID:         chi.URLParam(r, paramUID),
		RequesterID: requester,
	})
	if err != nil {
		return err
	}

	respondWithJSON(w, http.StatusOK, summaryResponse{ArmyBook: out.ArmyBook})
	return nil
}

func requireRequester(r *http.Request) (string, error) {
	requester := r.Header.Get(headerRequesterID)
	if requester == "" {
		return "", errors.Unauthenticated(headerRequesterID + " header is required")
	}
	return requester, nil
}
