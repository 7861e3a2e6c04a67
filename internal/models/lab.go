package models

type LabStatus string

const (
	LabAvailable   LabStatus = "available"
	LabMaintenance LabStatus = "maintenance"
	LabReserved    LabStatus = "reserved"
)

type Lab struct {
	ID             string                     `json:"id"`
	ProviderID     string                     `json:"provider_id"`
	Code           string                     `json:"code"`
	Name           string                     `json:"name"`
	Description    string                     `json:"description"`
	Type           string                     `json:"type"`
	Category       string                     `json:"category"`
	Subcategory    string                     `json:"subcategory,omitempty"`
	Location       Location                   `json:"location"`
	Capacity       Capacity                   `json:"capacity"`
	Equipment      map[string][]EquipmentItem `json:"equipment,omitempty"`
	Specifications Specifications             `json:"specifications"`
	Schedule       WeekSchedule               `json:"schedule"`
	Pricing        *LabPricing                `json:"pricing,omitempty"`
	Convention     *ConventionInfo            `json:"convention_info,omitempty"`
	Requirements   Requirements               `json:"requirements"`
	Status         LabStatus                  `json:"status"`
	Maintenance    Maintenance                `json:"maintenance"`
	Metadata       LabMetadata                `json:"metadata"`
	Features       []string                   `json:"features"`
	Images         []string                   `json:"images,omitempty"`
}

type Location struct {
	Building string `json:"building"`
	Floor    string `json:"floor,omitempty"`
	Room     string `json:"room,omitempty"`
	Address  string `json:"address,omitempty"`
}

type Capacity struct {
	MaxStudents    int `json:"max_students"`
	MaxInstructors int `json:"max_instructors,omitempty"`
	Workstations   int `json:"workstations,omitempty"`
	SquareMeters   int `json:"square_meters,omitempty"`
}

type EquipmentItem struct {
	Model    string `json:"model"`
	Quantity int    `json:"quantity"`
	Specs    string `json:"specs,omitempty"`
}

type Specifications struct {
	NetworkSpeed    string   `json:"network_speed,omitempty"`
	InternetAccess  bool     `json:"internet_access,omitempty"`
	IsolatedNetwork bool     `json:"isolated_network,omitempty"`
	PowerBackup     bool     `json:"power_backup,omitempty"`
	AirConditioning bool     `json:"air_conditioning,omitempty"`
	PhoneLines      int      `json:"phone_lines,omitempty"`
	FrequencyBands  []string `json:"frequency_bands,omitempty"`
	Security        []string `json:"security,omitempty"`
}

type LabPricing struct {
	Rates           Rates   `json:"rates"`
	Currency        string  `json:"currency"`
	RequiresDeposit bool    `json:"requires_deposit,omitempty"`
	DepositAmount   float64 `json:"deposit_amount,omitempty"`
	TaxRate         float64 `json:"tax_rate,omitempty"`
}

type Rates struct {
	Hourly  float64 `json:"hourly"`
	HalfDay float64 `json:"half_day,omitempty"`
	FullDay float64 `json:"full_day,omitempty"`
}

// ConventionInfo marks a lab whose usage is covered by an institutional
// agreement instead of per-hour pricing.
type ConventionInfo struct {
	ConventionID string `json:"convention_id"`
	Institution  string `json:"institution"`
	Covered      bool   `json:"covered"`
	ValidUntil   string `json:"valid_until,omitempty"`
}

type Requirements struct {
	MinParticipants    int  `json:"min_participants,omitempty"`
	MaxParticipants    int  `json:"max_participants,omitempty"`
	RequiresInstructor bool `json:"requires_instructor"`
	InstructorProvided bool `json:"instructor_provided,omitempty"`
	MinAge             int  `json:"min_age,omitempty"`
}

type Maintenance struct {
	LastMaintenance string `json:"last_maintenance,omitempty"`
	NextMaintenance string `json:"next_maintenance,omitempty"`
	Reason          string `json:"maintenance_reason,omitempty"`
}

type LabMetadata struct {
	CreatedAt     string  `json:"created_at,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	TotalBookings int     `json:"total_bookings,omitempty"`
}

// HasID reports whether id refers to this lab by either identifier.
func (l *Lab) HasID(id string) bool {
	return l.ID == id || l.ProviderID == id
}

// HourlyRate returns the hourly rate and currency, or zero values for
// convention-covered labs without pricing.
func (l *Lab) HourlyRate() (float64, string) {
	if l.Pricing == nil {
		return 0, ""
	}
	return l.Pricing.Rates.Hourly, l.Pricing.Currency
}

// CoveredByConvention reports whether usage is billed through an agreement.
func (l *Lab) CoveredByConvention() bool {
	return l.Convention != nil && l.Convention.Covered
}
