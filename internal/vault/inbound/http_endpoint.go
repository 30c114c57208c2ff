package inbound

import (
	"github.com/samber/lo"

	"github.com/Codewith-Raja/securevault/internal/pkg/goerror"
	"github.com/Codewith-Raja/securevault/internal/pkg/router"
	"github.com/Codewith-Raja/securevault/internal/vault/entity"
	"github.com/Codewith-Raja/securevault/internal/vault/usecase"
)

// HTTPEndpoint exposes HTTP handlers for credential records.
type HTTPEndpoint struct {
	uc uc
}

func toCredentialResponse(cred entity.Credential, _ int) CredentialResponse {
	return CredentialResponse{
		ID:       cred.ID,
		UserID:   cred.UserID,
		Website:  cred.Website,
		Username: cred.Username,
		Password: cred.Password,
	}
}

// Save stores one credential record.
func (h *HTTPEndpoint) Save(r *router.Request) (any, error) {
	var req SaveRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Save(r.Context(), usecase.SaveInput{
		UserID:   int64(req.UserID),
		Website:  req.Website,
		Username: req.Username,
		Password: req.Password,
	}); err != nil {
		return nil, err
	}

	return MessageResponse{Message: "Password saved successfully!"}, nil
}

// List returns the user's credential records, possibly an empty array.
func (h *HTTPEndpoint) List(r *router.Request) (any, error) {
	userID, err := r.GetParamInt64("userId")
	if err != nil {
		return nil, goerror.NewInvalidFormat("User ID is required")
	}

	resp, err := h.uc.List(r.Context(), usecase.ListInput{UserID: userID})
	if err != nil {
		return nil, err
	}

	return lo.Map(resp.Credentials, toCredentialResponse), nil
}

// Delete removes one credential record owned by the caller.
func (h *HTTPEndpoint) Delete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, goerror.NewInvalidFormat("Invalid password ID format")
	}

	if err := h.uc.Delete(r.Context(), usecase.DeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return MessageResponse{Message: "Password deleted successfully"}, nil
}

// Export returns all credential records of the authenticated caller.
func (h *HTTPEndpoint) Export(r *router.Request) (any, error) {
	resp, err := h.uc.Export(r.Context())
	if err != nil {
		return nil, err
	}

	return lo.Map(resp.Credentials, toCredentialResponse), nil
}
