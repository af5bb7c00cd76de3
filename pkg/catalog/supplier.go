package catalog

import (
	"fmt"

	"github.com/dmitrymomot/erplite/pkg/sanitizer"
	"github.com/dmitrymomot/erplite/pkg/validator"
)

// Supplier is a company or person the catalog buys from. Document is a CPF for
// individuals and a CNPJ for companies, stored as digits.
type Supplier struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Document string `json:"document" yaml:"document"`
	Email    string `json:"email" yaml:"email"`
	Phone    string `json:"phone" yaml:"phone"`
	Website  string `json:"website,omitempty" yaml:"website"`
	City     string `json:"city" yaml:"city"`
}

func (s Supplier) Field(name string) (any, bool) {
	switch name {
	case "id":
		return s.ID, true
	case "name":
		return s.Name, true
	case "document":
		return s.Document, true
	case "email":
		return s.Email, true
	case "phone":
		return s.Phone, true
	case "website":
		return s.Website, true
	case "city":
		return s.City, true
	}
	return nil, false
}

func (s Supplier) ToMap() map[string]any {
	return map[string]any{
		"name":     s.Name,
		"document": s.Document,
		"email":    s.Email,
		"phone":    s.Phone,
		"website":  s.Website,
		"city":     s.City,
	}
}

// Normalize cleans user input in place before validation.
func (s *Supplier) Normalize() {
	s.Name = sanitizer.Text(s.Name)
	s.Document = sanitizer.NormalizeTaxID(s.Document)
	s.Email = sanitizer.NormalizeEmail(s.Email)
	s.Phone = sanitizer.NormalizePhone(s.Phone)
	s.Website = sanitizer.NormalizeURL(s.Website)
	s.City = sanitizer.Text(s.City)
}

// DocumentKind reports "cpf" or "cnpj" for a valid document.
func (s Supplier) DocumentKind() (string, error) {
	switch {
	case validator.IsValidCPF(s.Document):
		return "cpf", nil
	case validator.IsValidCNPJ(s.Document):
		return "cnpj", nil
	}
	return "", fmt.Errorf("%w: %w: %q", ErrInvalidDocument, validator.ErrInvalidTaxID, s.Document)
}

// FormattedDocument renders the document with its usual punctuation.
func (s Supplier) FormattedDocument() string {
	kind, err := s.DocumentKind()
	if err != nil {
		return s.Document
	}
	if kind == "cpf" {
		return validator.FormatCPF(s.Document)
	}
	return validator.FormatCNPJ(s.Document)
}
