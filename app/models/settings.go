package models

// SchoolSettings is the singleton branding record.
type SchoolSettings struct {
	SchoolName string `json:"schoolName" bson:"schoolName"`
	SchoolLogo string `json:"schoolLogo" bson:"schoolLogo"`
}

// DefaultSettings is what the store hands out before anything is saved.
func DefaultSettings() SchoolSettings {
	return SchoolSettings{SchoolName: "My School", SchoolLogo: ""}
}

// SettingsPatch carries a partial settings update. Nil fields are left
// untouched by Apply.
type SettingsPatch struct {
	SchoolName *string
	SchoolLogo *string
}

func (s SchoolSettings) Apply(p SettingsPatch) SchoolSettings {
	if p.SchoolName != nil {
		s.SchoolName = *p.SchoolName
	}
	if p.SchoolLogo != nil {
		s.SchoolLogo = *p.SchoolLogo
	}
	return s
}
