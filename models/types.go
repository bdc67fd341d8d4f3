package models

// Voter field names understood by validation rules
const (
	FieldID   = "id"
	FieldName = "name"
	FieldAge  = "age"
)

// Minimum age for the default registration rules
const MinVotingAge = 18

// Meal type constants
const (
	MealVeg    = "veg"
	MealNonVeg = "nonveg"
	MealJain   = "jain"
)

// Delivery status constants
const (
	DeliveryPending   = "pending"
	DeliveryCompleted = "completed"
)

// Election types

type Candidate struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Party string `json:"party" yaml:"party"`
}

type Voter struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Age  int    `json:"age" yaml:"age"`
}

type ValidationRules struct {
	MinAge         int      `json:"min_age" yaml:"min_age"`
	RequiredFields []string `json:"required_fields" yaml:"required_fields"`
}

type ValidationResult struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason"`
}

// VoteReceipt is handed to the success path of a cast vote
type VoteReceipt struct {
	VoterID     string `json:"voter_id"`
	CandidateID string `json:"candidate_id"`
}

type Result struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Party string `json:"party"`
	Votes int    `json:"votes"`
}

// candidate_id -> count
type Tally map[string]int

type RegionNode struct {
	Name       string        `json:"name" yaml:"name"`
	Votes      int           `json:"votes" yaml:"votes"`
	SubRegions []*RegionNode `json:"sub_regions,omitempty" yaml:"sub_regions"`
}

// RegionTotal is a region's own votes plus those of every descendant
type RegionTotal struct {
	Name  string `json:"name"`
	Depth int    `json:"depth"`
	Total int    `json:"total"`
}

// RegionReport is the output of summing a standalone region tree
type RegionReport struct {
	Total   int           `json:"total"`
	Regions []RegionTotal `json:"regions"`
}

// Scenario types

type VoteRequest struct {
	Voter     string `json:"voter" yaml:"voter"`
	Candidate string `json:"candidate" yaml:"candidate"`
}

type Scenario struct {
	Candidates []Candidate   `json:"candidates" yaml:"candidates"`
	Voters     []Voter       `json:"voters" yaml:"voters"`
	Votes      []VoteRequest `json:"votes" yaml:"votes"`
	Regions    *RegionNode   `json:"regions,omitempty" yaml:"regions"`
}

type Registration struct {
	VoterID  string `json:"voter_id"`
	Accepted bool   `json:"accepted"`
}

type VoteOutcome struct {
	VoterID     string `json:"voter_id"`
	CandidateID string `json:"candidate_id"`
	Accepted    bool   `json:"accepted"`
	Reason      string `json:"reason,omitempty"`
}

type Report struct {
	SessionID     string         `json:"session_id"`
	Registrations []Registration `json:"registrations"`
	Votes         []VoteOutcome  `json:"votes"`
	Results       []Result       `json:"results"`
	Winner        *Result        `json:"winner"`
	Turnout       int            `json:"turnout"`
	Registered    int            `json:"registered"`
	RegionTotal   int            `json:"region_total"`
	Regions       []RegionTotal  `json:"regions,omitempty"`
}

// Tiffin types

type PlanRequest struct {
	Name     string `json:"name"`
	MealType string `json:"meal_type"`
	Days     int    `json:"days"`
}

type Plan struct {
	Name       string   `json:"name"`
	MealType   string   `json:"meal_type"`
	Days       int      `json:"days"`
	DailyRate  int      `json:"daily_rate"`
	TotalCost  int      `json:"total_cost"`
	AddonNames []string `json:"addon_names,omitempty"`
}

type Addon struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

type PlanSummary struct {
	TotalCustomers int            `json:"total_customers"`
	TotalRevenue   int            `json:"total_revenue"`
	MealBreakdown  map[string]int `json:"meal_breakdown"`
}

// Dabbawala types

type Delivery struct {
	ID     int    `json:"id"`
	From   string `json:"from"`
	To     string `json:"to"`
	Status string `json:"status"`
}

type DeliveryStats struct {
	Name        string `json:"name"`
	Area        string `json:"area"`
	Total       int    `json:"total"`
	Completed   int    `json:"completed"`
	Pending     int    `json:"pending"`
	SuccessRate string `json:"success_rate"`
}
