package model

// Attributes holds the 17 numeric scores (conceptually 0-100) used by the
// weighted composite. A fixed struct rather than a name-keyed map so a
// renamed or missing attribute is a compile error instead of a silent zero;
// fields absent from a JSON record still decode to 0 and score as 0.
type Attributes struct {
	Fatigue             float64 `json:"fatigueScore"`
	RestPeriod          float64 `json:"restPeriodScore"`
	ConsecutiveDuty     float64 `json:"consecutiveDutyScore"`
	MedicalStatus       float64 `json:"medicalStatusScore"`
	Performance         float64 `json:"performanceScore"`
	OnTimeRecord        float64 `json:"onTimeRecordScore"`
	SkillProficiency    float64 `json:"skillProficiencyScore"`
	Reliability         float64 `json:"reliabilityScore"`
	BackoutHistory      float64 `json:"backoutHistoryScore"`
	Seniority           float64 `json:"seniorityScore"`
	FlightHours         float64 `json:"flightHoursScore"`
	Location            float64 `json:"locationScore"`
	Availability        float64 `json:"availabilityScore"`
	DutyCompliance      float64 `json:"dutyComplianceScore"`
	CertificationValid  float64 `json:"certificationValidityScore"`
	LanguageProficiency float64 `json:"languageProficiencyScore"`
	RouteFamiliarity    float64 `json:"routeFamiliarityScore"`
}

// AttributeNames lists the canonical record keys in weight-table order.
// Values() returns scores in the same order; the two must stay in sync.
var AttributeNames = []string{
	"fatigueScore",
	"restPeriodScore",
	"consecutiveDutyScore",
	"medicalStatusScore",
	"performanceScore",
	"onTimeRecordScore",
	"skillProficiencyScore",
	"reliabilityScore",
	"backoutHistoryScore",
	"seniorityScore",
	"flightHoursScore",
	"locationScore",
	"availabilityScore",
	"dutyComplianceScore",
	"certificationValidityScore",
	"languageProficiencyScore",
	"routeFamiliarityScore",
}

// Values returns the scores in AttributeNames order.
func (a Attributes) Values() [17]float64 {
	return [17]float64{
		a.Fatigue,
		a.RestPeriod,
		a.ConsecutiveDuty,
		a.MedicalStatus,
		a.Performance,
		a.OnTimeRecord,
		a.SkillProficiency,
		a.Reliability,
		a.BackoutHistory,
		a.Seniority,
		a.FlightHours,
		a.Location,
		a.Availability,
		a.DutyCompliance,
		a.CertificationValid,
		a.LanguageProficiency,
		a.RouteFamiliarity,
	}
}

// Map returns the scores keyed by canonical record name.
func (a Attributes) Map() map[string]float64 {
	vals := a.Values()
	m := make(map[string]float64, len(AttributeNames))
	for i, name := range AttributeNames {
		m[name] = vals[i]
	}
	return m
}
