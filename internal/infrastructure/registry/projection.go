package registry

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"dialpool/internal/domain/record"
	"dialpool/internal/shared/errors"
)

const registryDateLayout = "2006-01-02"

// Project maps a raw registry payload onto the stored enrichment shape.
// originalIdentifier is the identifier as the caller supplied it. The raw
// payload is kept verbatim. EnrichedAt is left for the caller to stamp.
func Project(raw []byte, originalIdentifier string) (*record.Enrichment, error) {
	var p companyPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, errors.NewProjectionError("failed to decode registry payload", err)
	}

	est := p.Establishment
	if est == nil {
		est = &establishment{}
	}

	e := &record.Enrichment{
		FormattedIdentifier: formatIdentifier(originalIdentifier),
		LegalName:           orDefault(p.LegalName),
		TradeName:           optional(est.TradeName),
		RegistrationStatus:  orDefault(est.RegistrationStatus),
		PrimaryActivity:     projectCode(est.PrimaryActivity),
		SecondaryActivities: projectCodes(est.SecondaryActivities),
		LegalNature:         projectCode(p.LegalNature),
		SizeClass:           projectCode(p.SizeClass),
		Address:             composeAddress(est),
		Phone:               formatPhone(est.AreaCode1.String(), est.Phone1.String()),
		Phone2:              formatPhone(est.AreaCode2.String(), est.Phone2.String()),
		Email:               optional(est.Email),
		Owners:              projectOwners(p.Partners),
		RawPayload:          append(json.RawMessage(nil), raw...),
	}

	var err error
	if e.RegistrationStatusDate, err = parseDate(est.RegistrationStatusDate); err != nil {
		return nil, errors.NewProjectionError("invalid data_situacao_cadastral", err)
	}
	if e.ActivityStartDate, err = parseDate(est.ActivityStartDate); err != nil {
		return nil, errors.NewProjectionError("invalid data_inicio_atividade", err)
	}
	if capital := strings.TrimSpace(p.Capital.String()); capital != "" {
		d, err := decimal.NewFromString(capital)
		if err != nil {
			return nil, errors.NewProjectionError("invalid capital_social", err)
		}
		e.Capital = &d
	}

	return e, nil
}

func formatIdentifier(original string) string {
	id, err := record.NormalizeIdentifier(original)
	if err != nil {
		return original
	}
	return id.Formatted()
}

// composeAddress joins the address parts that are present with ", ". Street
// type and street are only used together.
func composeAddress(est *establishment) string {
	var parts []string
	if est.StreetType != "" && est.Street != "" {
		parts = append(parts, est.StreetType+" "+est.Street)
	}
	for _, part := range []string{est.Number.String(), est.Complement, est.District} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if est.City != nil && est.City.Name != "" {
		parts = append(parts, est.City.Name)
	}
	if est.State != nil && est.State.Abbreviation != "" {
		parts = append(parts, est.State.Abbreviation)
	}
	if cep := est.PostalCode.String(); cep != "" {
		parts = append(parts, "CEP: "+cep)
	}
	return strings.Join(parts, ", ")
}

func formatPhone(areaCode, number string) *string {
	if areaCode == "" || number == "" {
		return nil
	}
	phone := fmt.Sprintf("(%s) %s", areaCode, number)
	return &phone
}

func projectCode(cd *codeDescription) *record.CodeDescription {
	if cd == nil {
		return nil
	}
	return &record.CodeDescription{Code: cd.ID.String(), Description: cd.Description}
}

func projectCodes(cds []codeDescription) []record.CodeDescription {
	if len(cds) == 0 {
		return nil
	}
	out := make([]record.CodeDescription, len(cds))
	for i, cd := range cds {
		out[i] = record.CodeDescription{Code: cd.ID.String(), Description: cd.Description}
	}
	return out
}

func projectOwners(partners []partner) []record.Owner {
	if len(partners) == 0 {
		return nil
	}
	owners := make([]record.Owner, len(partners))
	for i, p := range partners {
		owners[i] = record.Owner{
			Name:      p.Name,
			Type:      p.Type.String(),
			EntryDate: p.EntryDate,
		}
		if p.Qualification != nil {
			owners[i].Qualification = p.Qualification.Description
		}
	}
	return owners
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(registryDateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func orDefault(s string) string {
	if strings.TrimSpace(s) == "" {
		return record.DefaultName
	}
	return s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
