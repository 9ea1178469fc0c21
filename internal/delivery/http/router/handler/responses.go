package handler

import (
	"time"

	"zoning/internal/domain/entity"
)

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

// applicantResponse is the dossier view returned to clients.
type applicantResponse struct {
	ID            string   `json:"id"`
	OwnerID       string   `json:"ownerId"`
	Name          string   `json:"name"`
	Sex           string   `json:"sex"`
	Address       string   `json:"address"`
	Zone          string   `json:"zone"`
	ZoneLocation  string   `json:"zoneLocation"`
	Area          float64  `json:"area"`
	Status        string   `json:"status"`
	RegisteredAt  string   `json:"registeredAt"`
	ReleaseDate   *string  `json:"releaseDate,omitempty"`
	PaymentDate   *string  `json:"paymentDate,omitempty"`
	PaymentAmount *float64 `json:"paymentAmount,omitempty"`
}

func toApplicantResponse(a *entity.Applicant) applicantResponse {
	resp := applicantResponse{
		ID:            a.ID.String(),
		OwnerID:       a.OwnerID.String(),
		Name:          a.Name,
		Sex:           string(a.Sex),
		Address:       a.Address,
		Zone:          string(a.Zone),
		ZoneLocation:  a.ZoneLocation,
		Area:          a.Area,
		Status:        string(a.Status),
		RegisteredAt:  a.RegisteredAt.Format(time.RFC3339),
		PaymentAmount: a.PaymentAmount,
	}
	if a.ReleaseDate != nil {
		v := a.ReleaseDate.Format(time.RFC3339)
		resp.ReleaseDate = &v
	}
	if a.PaymentDate != nil {
		v := a.PaymentDate.Format(time.RFC3339)
		resp.PaymentDate = &v
	}

	return resp
}

func toApplicantResponses(applicants []*entity.Applicant) []applicantResponse {
	out := make([]applicantResponse, 0, len(applicants))
	for _, a := range applicants {
		out = append(out, toApplicantResponse(a))
	}

	return out
}
