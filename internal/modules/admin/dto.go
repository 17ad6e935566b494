package admin

import "github.com/NickolasCage52/School-MVP/internal/domain"

// UpdateLeadStatusRequest is the admin status change body.
type UpdateLeadStatusRequest struct {
	Status domain.LeadStatus `json:"status" validate:"required,oneof='New' 'In work' 'Done' 'Invalid'"`
}

// LeadListResponse is one page of the admin lead table.
type LeadListResponse struct {
	Leads    []domain.Lead `json:"leads"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}

// ProgramRef is a program id+title pair for the admin filter dropdown.
type ProgramRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
