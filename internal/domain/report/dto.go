package report

// TimesheetDocument is the printable monthly mirror of a timesheet: every
// duration is already rendered as HH:MM text and every day carries its
// clock marks in order.
type TimesheetDocument struct {
	CompanyName  string `json:"empresa_nome"`
	CompanyCNPJ  string `json:"empresa_cnpj"`
	EmployeeName string `json:"colaborador_nome"`
	Position     string `json:"cargo,omitempty"`
	HiringRegime string `json:"regime_contratacao,omitempty"`
	Competence   string `json:"competencia"` // YYYY-MM

	Days []DayRow `json:"dias"`

	TotalWorked      string `json:"total_trabalhado"`
	TotalOvertime    string `json:"horas_extras"`
	TotalShortfall   string `json:"atrasos"`
	TotalAbsences    string `json:"faltas"`
	HourBankFinal    string `json:"banco_horas_final"`
	WorkedDays       int    `json:"dias_trabalhados"`
	GeneratedAtLocal string `json:"gerado_em"`
}

type DayRow struct {
	Date        string   `json:"data"` // YYYY-MM-DD
	Weekday     string   `json:"dia_semana"`
	Marks       []string `json:"batidas"` // HH:MM, chronological
	Worked      string   `json:"total_trabalhado"`
	Overtime    string   `json:"horas_extras"`
	Shortfall   string   `json:"atrasos"`
	HourBankDay string   `json:"banco_horas_dia"`
	Status      string   `json:"status"`
	StatusLabel string   `json:"status_label"`
}
