package delivery

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeneralInfoValidate(t *testing.T) {
	g := GeneralInfo{
		VehicleID: 12,
		Brand:     "Toyota",
		Model:     "Hilux",
		Year:      2022,
		Plate:     "P-123-XYZ",
		Color:     "blanco",
		Mileage:   15400,
	}
	require.NoError(t, g.Validate())

	g.Plate = ""
	g.Mileage = 0
	err := g.Validate()
	require.True(t, IsValidation(err))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, StepGeneral, ve.Step)
	require.Contains(t, ve.Fields, "Plate")
	require.Contains(t, ve.Fields, "Mileage")
}

func TestTiresValidateRequiresAllPositions(t *testing.T) {
	tr := Tires{
		FrontLeft:  "bueno",
		FrontRight: "bueno",
		RearLeft:   "regular",
		RearRight:  "bueno",
		Spare:      "bueno",
		Pressure:   "32psi",
	}
	require.NoError(t, tr.Validate())

	tr.Spare = ""
	require.True(t, IsValidation(tr.Validate()))
}

func TestEquipmentAcceptsEmptyChecklist(t *testing.T) {
	require.NoError(t, Equipment{}.Validate())
}

func TestSignaturesValidateRequiresBothImages(t *testing.T) {
	sig := Signatures{
		DeliveredByName:   "Ana Perez",
		ReceivedByName:    "Luis Gomez",
		DeliverySignature: base64.StdEncoding.EncodeToString([]byte("firma1")),
		ReceiveSignature:  base64.StdEncoding.EncodeToString([]byte("firma2")),
		DeliveryType:      "entrega",
	}
	require.NoError(t, sig.Validate())

	sig.ReceiveSignature = ""
	err := sig.Validate()
	require.True(t, IsValidation(err))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Contains(t, ve.Fields, "ReceiveSignature")
}

func TestDecodeImagesCapturesPerFileFailures(t *testing.T) {
	sig := Signatures{
		DeliverySignature: base64.StdEncoding.EncodeToString([]byte("ok")),
		ReceiveSignature:  "%%%not-base64%%%",
	}
	images, failures := sig.DecodeImages()

	require.Equal(t, []byte("ok"), images["entrega_firma"])
	require.Len(t, failures, 1)
	require.Error(t, failures["recepcion_firma"])
}
