package upload

import (
	"errors"
	"testing"
	"time"

	"github.com/everestllcweb-png/backend/config"
	"github.com/everestllcweb-png/backend/services"
)

func TestSignIsDeterministic(t *testing.T) {
	a := Sign("blogs", 1700000000, "secret")
	if a != Sign("blogs", 1700000000, "secret") {
		t.Fatal("same input produced different signatures")
	}
	if len(a) != 40 {
		t.Errorf("signature %q is not hex SHA-1", a)
	}

	for name, other := range map[string]string{
		"folder":    Sign("sliders", 1700000000, "secret"),
		"timestamp": Sign("blogs", 1700000001, "secret"),
		"secret":    Sign("blogs", 1700000000, "other"),
	} {
		if other == a {
			t.Errorf("changing %s did not change the signature", name)
		}
	}
}

func TestSignKnownValue(t *testing.T) {
	// sha1("folder=blogs&timestamp=1315060510abcd")
	const want = "41bdb03dd68a40d9dfc4993b56d96400e00b276a"
	if got := Sign("blogs", 1315060510, "abcd"); got != want {
		t.Errorf("Sign() = %s, want %s", got, want)
	}
}

func TestSignerSignature(t *testing.T) {
	signer := NewSigner(&config.EnviornmentVariable{
		CLOUDINARY_CLOUD_NAME: "demo",
		CLOUDINARY_API_KEY:    "key",
		CLOUDINARY_API_SECRET: "secret",
	})
	signer.SetClock(func() time.Time { return time.Unix(1700000000, 0) })

	sig, err := signer.Signature("")
	if err != nil {
		t.Fatal(err)
	}
	if sig.Folder != DefaultFolder || sig.Timestamp != 1700000000 {
		t.Errorf("folder/timestamp = %s/%d", sig.Folder, sig.Timestamp)
	}
	if sig.Signature != Sign(DefaultFolder, 1700000000, "secret") {
		t.Errorf("signature = %s", sig.Signature)
	}
	if sig.APIKey != "key" || sig.CloudName != "demo" {
		t.Errorf("credentials = %+v", sig)
	}
}

func TestSignerRequiresCredentials(t *testing.T) {
	signer := NewSigner(&config.EnviornmentVariable{CLOUDINARY_CLOUD_NAME: "demo", CLOUDINARY_API_KEY: "key"})

	_, err := signer.Signature("blogs")
	if !errors.Is(err, services.ErrConfiguration) {
		t.Errorf("err = %v, want ErrConfiguration", err)
	}
}
