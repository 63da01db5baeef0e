package http

import (
	"net/http"

	"github.com/MKhiriev/go-travel-journal/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.IdentityService.GetProfile(r.Context(), currentUserID(r))
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	writeOK(w, r, "ok", user)
}

// updateProfile accepts a partial profile. A password in the body is
// dropped by the decoder.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var patch models.ProfilePatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, r, err, nil)
		return
	}

	user, err := h.services.IdentityService.UpdateProfile(r.Context(), currentUserID(r), patch)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	writeOK(w, r, "profile updated", user)
}

func (h *Handler) updateNickname(w http.ResponseWriter, r *http.Request) {
	var req models.NicknameRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, nil)
		return
	}

	user, err := h.services.IdentityService.UpdateNickname(r.Context(), currentUserID(r), req.Nickname)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	writeOK(w, r, "nickname updated", user)
}

// listMyPhotosGallery is the profile page variant of the photo listing,
// with a larger default page.
func (h *Handler) listMyPhotosGallery(w http.ResponseWriter, r *http.Request) {
	h.writeMyPhotos(w, r, defaultGalleryPageSize)
}
