package report

// CompanyReportRow is one employee's aggregate for the company-wide
// monthly report.
type CompanyReportRow struct {
	EmployeeID      string `json:"employee_id"`
	EnrollmentNo    string `json:"enrollment_no"`
	Name            string `json:"name"`
	ExpectedMinutes int    `json:"expected_minutes"`
	WorkedMinutes   int    `json:"worked_minutes"`
	AbonoMinutes    int    `json:"abono_minutes"`
	ExtraMinutes    int    `json:"extra_minutes"`
	DelayMinutes    int    `json:"delay_minutes"`
	BalanceMinutes  int    `json:"balance_minutes"`
}

// CompanyMonthlyReport is the company-wide report for one month.
type CompanyMonthlyReport struct {
	Month string             `json:"month"`
	Rows  []CompanyReportRow `json:"rows"`

	TotalExpectedMinutes int `json:"total_expected_minutes"`
	TotalWorkedMinutes   int `json:"total_worked_minutes"`
	TotalAbonoMinutes    int `json:"total_abono_minutes"`
	TotalExtraMinutes    int `json:"total_extra_minutes"`
	TotalDelayMinutes    int `json:"total_delay_minutes"`
	TotalBalanceMinutes  int `json:"total_balance_minutes"`
}

// DashboardStats is the landing-page summary.
type DashboardStats struct {
	Employees struct {
		Total   int `json:"total"`
		Present int `json:"present"`
		Absent  int `json:"absent"`
	} `json:"employees"`
	Monthly struct {
		ExtraHours   string `json:"extra_hours"`
		DelayHours   string `json:"delay_hours"`
		BalanceHours string `json:"balance_hours"`
	} `json:"monthly"`
}
