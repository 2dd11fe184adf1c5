package models

const (
	LeadNew           = "New"
	LeadContacted     = "Contacted"
	LeadInNegotiation = "In Negotiation"
	LeadRejected      = "Rejected"
)

var LeadStatuses = []string{LeadNew, LeadContacted, LeadInNegotiation, LeadRejected}

type FranchiseLead struct {
	Base
	Name            string `gorm:"not null" json:"name"`
	Email           string `gorm:"not null" json:"email"`
	Phone           string `json:"phone"`
	City            string `json:"city"`
	InvestmentRange string `json:"investmentRange"`
	Message         string `gorm:"type:text" json:"message"`
	Status          string `gorm:"type:VARCHAR(20);default:'New';index" json:"status"`
}
