package registry

import (
	"bytes"
	"encoding/json"
)

// flexString accepts both JSON strings and numbers. The registry is not
// consistent about how it encodes codes.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

type codeDescription struct {
	ID          flexString `json:"id"`
	Description string     `json:"descricao"`
}

type city struct {
	Name string `json:"nome"`
}

type state struct {
	Abbreviation string `json:"sigla"`
}

type establishment struct {
	TradeName              string            `json:"nome_fantasia"`
	RegistrationStatus     string            `json:"situacao_cadastral"`
	RegistrationStatusDate string            `json:"data_situacao_cadastral"`
	ActivityStartDate      string            `json:"data_inicio_atividade"`
	PrimaryActivity        *codeDescription  `json:"atividade_principal"`
	SecondaryActivities    []codeDescription `json:"atividades_secundarias"`
	StreetType             string            `json:"tipo_logradouro"`
	Street                 string            `json:"logradouro"`
	Number                 flexString        `json:"numero"`
	Complement             string            `json:"complemento"`
	District               string            `json:"bairro"`
	City                   *city             `json:"cidade"`
	State                  *state            `json:"estado"`
	PostalCode             flexString        `json:"cep"`
	AreaCode1              flexString        `json:"ddd1"`
	Phone1                 flexString        `json:"telefone1"`
	AreaCode2              flexString        `json:"ddd2"`
	Phone2                 flexString        `json:"telefone2"`
	Email                  string            `json:"email"`
}

type qualification struct {
	Description string `json:"descricao"`
}

type partner struct {
	Name          string         `json:"nome"`
	Type          flexString     `json:"tipo"`
	EntryDate     string         `json:"data_entrada"`
	Qualification *qualification `json:"qualificacao_socio"`
}

// companyPayload is the subset of the registry response that gets projected.
type companyPayload struct {
	RootIdentifier flexString       `json:"cnpj_raiz"`
	LegalName      string           `json:"razao_social"`
	Capital        flexString       `json:"capital_social"`
	LegalNature    *codeDescription `json:"natureza_juridica"`
	SizeClass      *codeDescription `json:"porte"`
	Partners       []partner        `json:"socios"`
	Establishment  *establishment   `json:"estabelecimento"`
}

// hasRoot reports whether raw decodes to an object carrying cnpj_raiz.
func hasRoot(raw []byte) bool {
	var probe struct {
		RootIdentifier flexString `json:"cnpj_raiz"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	return probe.RootIdentifier != ""
}

func (f flexString) String() string {
	return string(f)
}

