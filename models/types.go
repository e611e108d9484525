package models

import "time"

// Role constants
const (
	RoleVolunteer = "volunteer"
)

// Turtle sex constants
const (
	SexMale    = "male"
	SexFemale  = "female"
	SexUnknown = "unknown"
)

// Nest status constants
const (
	NestStatusIncubating = "incubating"
	NestStatusHatching   = "hatching"
	NestStatusHatched    = "hatched"
)

// Domain types

type User struct {
	ID              int64     `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"` // Never expose in JSON
	Role            string    `json:"role"`
	IsEmailVerified bool      `json:"is_email_verified"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// FlipperTags holds the tag number and tag address for each limb.
type FlipperTags struct {
	FrontLeftTag      *string `json:"front_left_tag"`
	FrontLeftAddress  *string `json:"front_left_address"`
	FrontRightTag     *string `json:"front_right_tag"`
	FrontRightAddress *string `json:"front_right_address"`
	RearLeftTag       *string `json:"rear_left_tag"`
	RearLeftAddress   *string `json:"rear_left_address"`
	RearRightTag      *string `json:"rear_right_tag"`
	RearRightAddress  *string `json:"rear_right_address"`
}

// Morphometrics are the carapace and tail measurements, in centimetres.
type Morphometrics struct {
	SCLMax          float64 `json:"scl_max"`
	SCLMin          float64 `json:"scl_min"`
	SCW             float64 `json:"scw"`
	CCLMax          float64 `json:"ccl_max"`
	CCLMin          float64 `json:"ccl_min"`
	CCW             float64 `json:"ccw"`
	TailExtension   float64 `json:"tail_extension"`
	VentToTailTip   float64 `json:"vent_to_tail_tip"`
	TotalTailLength float64 `json:"total_tail_length"`
}

type Turtle struct {
	ID              int64   `json:"id"`
	Name            *string `json:"name"`
	Species         string  `json:"species"`
	Sex             string  `json:"sex"`
	HealthCondition string  `json:"health_condition"`
	FlipperTags
	Morphometrics
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NestingTimes are wall-clock times observed while a turtle nests.
type NestingTimes struct {
	TimeFirstSeen      *string `json:"time_first_seen"`
	TimeStartEggLaying *string `json:"time_start_egg_laying"`
	TimeCovering       *string `json:"time_covering"`
	TimeEndCamouflage  *string `json:"time_end_camouflage"`
	TimeReachSea       *string `json:"time_reach_sea"`
}

type SurveyEvent struct {
	ID        int64     `json:"id"`
	EventDate time.Time `json:"event_date"`
	EventType string    `json:"event_type"`
	Location  string    `json:"location"`
	TurtleID  int64     `json:"turtle_id"`
	FlipperTags
	Morphometrics
	HealthCondition string  `json:"health_condition"`
	Observer        string  `json:"observer"`
	Notes           *string `json:"notes"`
	NestingTimes
	CreatedAt time.Time `json:"created_at"`
}

// SurveyEventWithTurtle is a survey event joined with its turtle.
type SurveyEventWithTurtle struct {
	SurveyEvent
	TurtleName    *string `json:"turtle_name"`
	TurtleSpecies string  `json:"species"`
}

// Triangulation holds the two fixed reference points used to relocate a nest.
type Triangulation struct {
	TriTLDesc     *string  `json:"tri_tl_desc"`
	TriTLLat      *float64 `json:"tri_tl_lat"`
	TriTLLong     *float64 `json:"tri_tl_long"`
	TriTLDistance *float64 `json:"tri_tl_distance"`
	TriTRDesc     *string  `json:"tri_tr_desc"`
	TriTRLat      *float64 `json:"tri_tr_lat"`
	TriTRLong     *float64 `json:"tri_tr_long"`
	TriTRDistance *float64 `json:"tri_tr_distance"`
}

type Nest struct {
	ID                  int64    `json:"id"`
	NestCode            string   `json:"nest_code"`
	TotalNumEggs        *int     `json:"total_num_eggs"`
	CurrentNumEggs      *int     `json:"current_num_eggs"`
	DepthTopEggH        float64  `json:"depth_top_egg_h"`
	DepthBottomChamberH *float64 `json:"depth_bottom_chamber_h"`
	DistanceToSeaS      float64  `json:"distance_to_sea_s"`
	WidthW              *float64 `json:"width_w"`
	GPSLat              float64  `json:"gps_lat"`
	GPSLong             float64  `json:"gps_long"`
	Triangulation
	Status     string    `json:"status"`
	Relocated  bool      `json:"relocated"`
	DateFound  time.Time `json:"date_found"`
	Beach      string    `json:"beach"`
	Notes      *string   `json:"notes"`
	IsArchived bool      `json:"is_archived"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NestSiteMeasurements describe a nest chamber and its position.
// Nest events record one set before and one after relocation.
type NestSiteMeasurements struct {
	OriginalDepthTopEggH        *float64 `json:"original_depth_top_egg_h"`
	OriginalDepthBottomChamberH *float64 `json:"original_depth_bottom_chamber_h"`
	OriginalWidthW              *float64 `json:"original_width_w"`
	OriginalDistanceToSeaS      *float64 `json:"original_distance_to_sea_s"`
	OriginalGPSLat              *float64 `json:"original_gps_lat"`
	OriginalGPSLong             *float64 `json:"original_gps_long"`
	ReburiedDepthTopEggH        *float64 `json:"reburied_depth_top_egg_h"`
	ReburiedDepthBottomChamberH *float64 `json:"reburied_depth_bottom_chamber_h"`
	ReburiedWidthW              *float64 `json:"reburied_width_w"`
	ReburiedDistanceToSeaS      *float64 `json:"reburied_distance_to_sea_s"`
	ReburiedGPSLat              *float64 `json:"reburied_gps_lat"`
	ReburiedGPSLong             *float64 `json:"reburied_gps_long"`
}

// EggCounts are the excavation tallies for a nest. Each developmental stage
// is counted in total and broken down by fungal infection.
type EggCounts struct {
	Hatched            int `json:"hatched"`
	HatchedBlackFungus int `json:"hatched_black_fungus"`
	HatchedPinkFungus  int `json:"hatched_pink_fungus"`
	HatchedGreenFungus int `json:"hatched_green_fungus"`

	NonViable            int `json:"non_viable"`
	NonViableBlackFungus int `json:"non_viable_black_fungus"`
	NonViablePinkFungus  int `json:"non_viable_pink_fungus"`
	NonViableGreenFungus int `json:"non_viable_green_fungus"`

	EyeSpot            int `json:"eye_spot"`
	EyeSpotBlackFungus int `json:"eye_spot_black_fungus"`
	EyeSpotPinkFungus  int `json:"eye_spot_pink_fungus"`
	EyeSpotGreenFungus int `json:"eye_spot_green_fungus"`

	Early            int `json:"early"`
	EarlyBlackFungus int `json:"early_black_fungus"`
	EarlyPinkFungus  int `json:"early_pink_fungus"`
	EarlyGreenFungus int `json:"early_green_fungus"`

	Middle            int `json:"middle"`
	MiddleBlackFungus int `json:"middle_black_fungus"`
	MiddlePinkFungus  int `json:"middle_pink_fungus"`
	MiddleGreenFungus int `json:"middle_green_fungus"`

	Late            int `json:"late"`
	LateBlackFungus int `json:"late_black_fungus"`
	LatePinkFungus  int `json:"late_pink_fungus"`
	LateGreenFungus int `json:"late_green_fungus"`

	Piped            int `json:"piped"`
	PipedBlackFungus int `json:"piped_black_fungus"`
	PipedPinkFungus  int `json:"piped_pink_fungus"`
	PipedGreenFungus int `json:"piped_green_fungus"`

	AliveWithin     int `json:"alive_within"`
	DeadWithin      int `json:"dead_within"`
	AliveAbove      int `json:"alive_above"`
	DeadAbove       int `json:"dead_above"`
	ReburiedNumEggs int `json:"reburied_num_eggs"`
	TracksToSea     int `json:"tracks_to_sea"`
	TracksLost      int `json:"tracks_lost"`
}

type NestEvent struct {
	ID        int64     `json:"id"`
	EventType string    `json:"event_type"`
	EventDate time.Time `json:"event_date"`
	NestID    int64     `json:"nest_id"`
	NestCode  string    `json:"nest_code"`
	NestSiteMeasurements
	EggCounts
	StartTime *string   `json:"start_time"`
	EndTime   *string   `json:"end_time"`
	Observer  *string   `json:"observer"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Request types

type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MorphometricsInput is Morphometrics as received, where a missing value is nil.
type MorphometricsInput struct {
	SCLMax          *float64 `json:"scl_max"`
	SCLMin          *float64 `json:"scl_min"`
	SCW             *float64 `json:"scw"`
	CCLMax          *float64 `json:"ccl_max"`
	CCLMin          *float64 `json:"ccl_min"`
	CCW             *float64 `json:"ccw"`
	TailExtension   *float64 `json:"tail_extension"`
	VentToTailTip   *float64 `json:"vent_to_tail_tip"`
	TotalTailLength *float64 `json:"total_tail_length"`
}

type CreateTurtleRequest struct {
	Name            *string `json:"name"`
	Species         string  `json:"species"`
	Sex             string  `json:"sex"`
	HealthCondition string  `json:"health_condition"`
	FlipperTags
	MorphometricsInput
}

type UpdateTurtleRequest struct {
	HealthCondition string `json:"health_condition"`
	FlipperTags
	MorphometricsInput
}

type CreateSurveyEventRequest struct {
	EventDate *time.Time `json:"event_date"`
	EventType string     `json:"event_type"`
	Location  string     `json:"location"`
	TurtleID  *int64     `json:"turtle_id"`
	FlipperTags
	MorphometricsInput
	HealthCondition string  `json:"health_condition"`
	Observer        string  `json:"observer"`
	Notes           *string `json:"notes"`
	NestingTimes
}

// NestRequest is the body of both nest create and nest update.
type NestRequest struct {
	NestCode            string   `json:"nest_code"`
	TotalNumEggs        *int     `json:"total_num_eggs"`
	CurrentNumEggs      *int     `json:"current_num_eggs"`
	DepthTopEggH        *float64 `json:"depth_top_egg_h"`
	DepthBottomChamberH *float64 `json:"depth_bottom_chamber_h"`
	DistanceToSeaS      *float64 `json:"distance_to_sea_s"`
	WidthW              *float64 `json:"width_w"`
	GPSLat              *float64 `json:"gps_lat"`
	GPSLong             *float64 `json:"gps_long"`
	Triangulation
	Status     string  `json:"status"`
	Relocated  *bool   `json:"relocated"`
	DateFound  string  `json:"date_found"`
	Beach      string  `json:"beach"`
	Notes      *string `json:"notes"`
	IsArchived *bool   `json:"is_archived"`
}

// NestEventRequest is the body of both nest event create and update.
// NestID is only read on update; create resolves it from NestCode.
type NestEventRequest struct {
	EventType string     `json:"event_type"`
	EventDate *time.Time `json:"event_date"`
	NestID    *int64     `json:"nest_id"`
	NestCode  string     `json:"nest_code"`
	NestSiteMeasurements
	EggCounts
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Observer  *string `json:"observer"`
	Notes     *string `json:"notes"`
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

type UserResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

type UsersResponse struct {
	Message string `json:"message"`
	Users   []User `json:"users"`
}

type TurtleResponse struct {
	Message string `json:"message"`
	Turtle  Turtle `json:"turtle"`
}

type TurtlesResponse struct {
	Message string   `json:"message"`
	Turtles []Turtle `json:"turtles"`
}

type SurveyEventResponse struct {
	Message     string      `json:"message"`
	SurveyEvent SurveyEvent `json:"survey_event"`
}

type SurveyEventsResponse struct {
	Message      string                  `json:"message"`
	SurveyEvents []SurveyEventWithTurtle `json:"survey_events"`
}

type NestResponse struct {
	Message string `json:"message"`
	Nest    Nest   `json:"nest"`
}

type NestsResponse struct {
	Message string `json:"message"`
	Nests   []Nest `json:"nests"`
}

type NestEventResponse struct {
	Message   string    `json:"message"`
	NestEvent NestEvent `json:"nest_event"`
}

type NestEventsResponse struct {
	Message    string      `json:"message"`
	Count      int         `json:"count"`
	NestEvents []NestEvent `json:"nest_events"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
