package delivery

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New()

// ValidationError reports the required fields missing from a step payload.
// It is the client-side validation class: the step's backend call must not
// fire while one of these is outstanding.
type ValidationError struct {
	Step   Step
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %s is missing required fields: %s", e.Step, strings.Join(e.Fields, ", "))
}

// IsValidation reports whether err is a client-side required-field failure
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func checkRequired(step Step, payload interface{}) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(err, "payload validation failed")
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Step: step, Fields: fields}
}

// GeneralInfo is the step 1 payload: the vehicle intake data that creates
// the inspection case.
type GeneralInfo struct {
	VehicleID int64  `json:"vehicle_id" validate:"required,gt=0"`
	Brand     string `json:"brand" validate:"required"`
	Model     string `json:"model" validate:"required"`
	Year      int    `json:"year" validate:"required,gt=0"`
	Plate     string `json:"plate" validate:"required"`
	Color     string `json:"color" validate:"required"`
	Mileage   int    `json:"mileage" validate:"required,gt=0"`
	FuelLevel string `json:"fuel_level"`
}

// Validate checks the step 1 required-field policy
func (g GeneralInfo) Validate() error {
	return checkRequired(StepGeneral, g)
}

// Exterior is the step 2 payload: all four condition selections are required
type Exterior struct {
	Body       string `json:"body" validate:"required"`
	Windshield string `json:"windshield" validate:"required"`
	Windows    string `json:"windows" validate:"required"`
	Lights     string `json:"lights" validate:"required"`
	Notes      string `json:"notes"`
}

// Validate checks the step 2 required-field policy
func (e Exterior) Validate() error {
	return checkRequired(StepExterior, e)
}

// Tires is the step 3 payload: four wear selections plus spare and pressure
type Tires struct {
	FrontLeft  string `json:"front_left" validate:"required"`
	FrontRight string `json:"front_right" validate:"required"`
	RearLeft   string `json:"rear_left" validate:"required"`
	RearRight  string `json:"rear_right" validate:"required"`
	Spare      string `json:"spare" validate:"required"`
	Pressure   string `json:"pressure" validate:"required"`
}

// Validate checks the step 3 required-field policy
func (t Tires) Validate() error {
	return checkRequired(StepTires, t)
}

// Fluids is the step 4 payload covering fluid levels and interior condition
type Fluids struct {
	OilLevel     string `json:"oil_level" validate:"required"`
	CoolantLevel string `json:"coolant_level" validate:"required"`
	BrakeFluid   string `json:"brake_fluid" validate:"required"`
	Upholstery   string `json:"upholstery"`
	Dashboard    string `json:"dashboard"`
	Mats         string `json:"mats"`
}

// Validate checks the step 4 required-field policy
func (f Fluids) Validate() error {
	return checkRequired(StepFluids, f)
}

// Equipment is the step 5 on-board equipment checklist
type Equipment struct {
	Jack         bool   `json:"jack"`
	WheelWrench  bool   `json:"wheel_wrench"`
	SpareKit     bool   `json:"spare_kit"`
	Extinguisher bool   `json:"extinguisher"`
	FirstAidKit  bool   `json:"first_aid_kit"`
	Triangles    bool   `json:"triangles"`
	Manuals      bool   `json:"manuals"`
	Notes        string `json:"notes"`
}

// Validate accepts any checklist combination; the step only records presence
func (e Equipment) Validate() error {
	return nil
}

// Signatures is the step 6 payload. Both signature images must be present
// before the case can be finalized.
type Signatures struct {
	DeliveredByName string `json:"delivered_by_name" validate:"required"`
	DeliveredByID   string `json:"delivered_by_id"`
	ReceivedByName  string `json:"received_by_name" validate:"required"`
	ReceivedByID    string `json:"received_by_id"`
	// Base64-encoded signature images
	DeliverySignature string `json:"entrega_firma" validate:"required"`
	ReceiveSignature  string `json:"recepcion_firma" validate:"required"`
	DeliveryType      string `json:"delivery_type" validate:"required"`
	ReturnDate        string `json:"return_date,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

// Validate checks the step 6 required-field policy
func (s Signatures) Validate() error {
	return checkRequired(StepSignatures, s)
}

// DecodeImages decodes the staged signature images, capturing the error per
// file instead of failing on the first one.
func (s Signatures) DecodeImages() (map[string][]byte, map[string]error) {
	staged := map[string]string{
		"entrega_firma":   s.DeliverySignature,
		"recepcion_firma": s.ReceiveSignature,
	}
	images := make(map[string][]byte, len(staged))
	failures := make(map[string]error)
	for name, encoded := range staged {
		if encoded == "" {
			continue
		}
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			failures[name] = errors.Wrapf(err, "signature %s is not valid base64", name)
			continue
		}
		images[name] = decoded
	}
	if len(failures) == 0 {
		failures = nil
	}
	return images, failures
}
