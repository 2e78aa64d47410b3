package v1alpha1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"

	v1alpha1 "github.com/KirkDiggler/raid-gold-api/internal/api/expedition/v1alpha1"
)

func TestCodecIsRegistered(t *testing.T) {
	codec := encoding.GetCodec(v1alpha1.CodecName)

	require.NotNil(t, codec)
	assert.Equal(t, "json", codec.Name())
}

func TestCodecRendersUnavailableGoldAsNull(t *testing.T) {
	hard := int64(7200)
	data, err := v1alpha1.Codec{}.Marshal(&v1alpha1.Raid{ID: 6, Name: "Echidna", HardGold: &hard})

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":6,"name":"Echidna","normal_gold":null,"hard_gold":7200}`, string(data))
}

func TestCodecKeepsMissingStateFieldsDistinct(t *testing.T) {
	var req v1alpha1.SaveSelectionsRequest
	err := v1alpha1.Codec{}.Unmarshal([]byte(`{"identity":"Bob","state":{"chosen_raids":{},"extra_income":{}}}`), &req)

	require.NoError(t, err)
	require.NotNil(t, req.State)
	assert.NotNil(t, req.State.ChosenRaids)
	assert.NotNil(t, req.State.ExtraIncome)
	assert.Nil(t, req.State.Difficulties)
}

func TestCodecEmptyPayload(t *testing.T) {
	var req v1alpha1.ListRaidsRequest

	assert.NoError(t, v1alpha1.Codec{}.Unmarshal(nil, &req))
}

func TestCodecRejectsMalformedJSON(t *testing.T) {
	var req v1alpha1.GetRosterRequest

	err := v1alpha1.Codec{}.Unmarshal([]byte(`{"identity":`), &req)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "json codec unmarshal")
}
