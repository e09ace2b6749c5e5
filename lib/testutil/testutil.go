package testutil

import (
	"encoding/json"
	"os"
	"testing"

	"instacreators-backend/lib/telemetry"
)

// Setup prepares logging and telemetry for a test package.
func Setup(t testing.TB, name string) func() {
	return telemetry.SetupForTesting(t, "test:"+name)
}

// LoadFixture unmarshals a JSON fixture from testdata.
func LoadFixture[T any](t testing.TB, path string) T {
	var out T
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	err = json.Unmarshal(data, &out)
	if err != nil {
		t.Fatal(err)
	}
	return out
}
