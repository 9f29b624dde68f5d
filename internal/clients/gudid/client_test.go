package gudid_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/imedlab/inventory-manager/internal/apperrors"
	"github.com/imedlab/inventory-manager/internal/clients/gudid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullResponse = `{
	"gudid": {
		"device": {
			"identifiers": {
				"identifier": [
					{"deviceId": "08717648200274", "deviceIdType": "Primary", "pkgQuantity": null},
					{"deviceId": "08717648200281", "deviceIdType": "Package"}
				]
			},
			"brandName": null,
			"versionModelNumber": "RF*B14STQ",
			"catalogNumber": null,
			"companyName": "Terumo Medical Corporation",
			"deviceCount": 1,
			"deviceDescription": "Hydrophilic coated guide wire",
			"rx": true,
			"otc": null,
			"MRISafetyStatus": null
		}
	},
	"productCodes": [
		{"productCode": "DQX", "deviceName": "Wire, Guide, Catheter", "deviceClass": "2"},
		{"productCode": "DQY", "deviceName": "Secondary classification"}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *gudid.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return gudid.NewClient(server.URL, 2*time.Second)
}

func TestLookupDevice_ExtractsCanonicalFields(t *testing.T) {
	var gotPath, gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("udi")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fullResponse))
	})

	rec, err := client.LookupDevice(context.Background(), "08717648200274")
	require.NoError(t, err)

	assert.Equal(t, "/devices/lookup.json", gotPath)
	assert.Equal(t, "08717648200274", gotQuery)

	// First product code entry is canonical, first identifier wins.
	assert.Equal(t, "Wire, Guide, Catheter", rec.DeviceName)
	assert.Equal(t, "08717648200274", rec.DeviceID)
	assert.Equal(t, "Terumo Medical Corporation", rec.CompanyName)
	assert.Equal(t, "RF*B14STQ", rec.ModelNumber)
	assert.Equal(t, "Hydrophilic coated guide wire", rec.Description)
}

func TestLookupDevice_NullTextFieldsBecomeEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"gudid": {"device": {
				"identifiers": {"identifier": [{"deviceId": "X1"}]},
				"companyName": null,
				"versionModelNumber": null,
				"deviceDescription": null
			}},
			"productCodes": [{"deviceName": null}]
		}`))
	})

	rec, err := client.LookupDevice(context.Background(), "X1")
	require.NoError(t, err)
	assert.Equal(t, "", rec.DeviceName)
	assert.Equal(t, "", rec.CompanyName)
	assert.Equal(t, "", rec.ModelNumber)
	assert.Equal(t, "", rec.Description)
}

func TestLookupDevice_EmptyIdentifierShortCircuits(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.LookupDevice(context.Background(), "  ")
	assert.ErrorIs(t, err, apperrors.ErrLookupFailed)
	assert.False(t, called, "empty identifier must not hit the network")
}

func TestLookupDevice_ServerErrorIsLookupFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.LookupDevice(context.Background(), "08717648200274")
	assert.ErrorIs(t, err, apperrors.ErrLookupFailed)
}

func TestLookupDevice_NotFoundIsLookupFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.LookupDevice(context.Background(), "no-such-device")
	assert.ErrorIs(t, err, apperrors.ErrLookupFailed)
	assert.False(t, errors.Is(err, apperrors.ErrIncompleteRecord))
}

func TestLookupDevice_ZeroProductCodesIsIncomplete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"gudid": {"device": {"identifiers": {"identifier": [{"deviceId": "X1"}]}}},
			"productCodes": []
		}`))
	})

	_, err := client.LookupDevice(context.Background(), "X1")
	assert.ErrorIs(t, err, apperrors.ErrIncompleteRecord)
}

func TestLookupDevice_ZeroIdentifiersIsIncomplete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"gudid": {"device": {"identifiers": {"identifier": []}}},
			"productCodes": [{"deviceName": "Something"}]
		}`))
	})

	_, err := client.LookupDevice(context.Background(), "X1")
	assert.ErrorIs(t, err, apperrors.ErrIncompleteRecord)
}

func TestLookupDevice_TimeoutIsLookupFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := gudid.NewClient(server.URL, 20*time.Millisecond)
	_, err := client.LookupDevice(context.Background(), "08717648200274")
	assert.ErrorIs(t, err, apperrors.ErrLookupFailed)
}

func TestRecordURL(t *testing.T) {
	client := gudid.NewClient("https://accessgudid.nlm.nih.gov/api/v3", time.Second)
	assert.Equal(t,
		"https://accessgudid.nlm.nih.gov/api/v3/devices/lookup.json?udi=08717648200274",
		client.RecordURL("08717648200274"))
}
