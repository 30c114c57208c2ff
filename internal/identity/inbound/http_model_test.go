package inbound

import (
	"encoding/json"
	"testing"
)

func TestOTPCodeUnmarshal(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    string
		wantErr bool
	}{
		{name: "String", payload: `{"otp":"123456"}`, want: "123456"},
		{name: "Number", payload: `{"otp":123456}`, want: "123456"},
		{name: "Null", payload: `{"otp":null}`, want: ""},
		{name: "Missing", payload: `{}`, want: ""},
		{name: "Object", payload: `{"otp":{}}`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req SignupRequest
			err := json.Unmarshal([]byte(tc.payload), &req)

			if tc.wantErr {
				if err == nil {
					t.Fatal("expected decode error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected decode error: %v", err)
			}
			if string(req.OTP) != tc.want {
				t.Fatalf("expected otp %q, got %q", tc.want, req.OTP)
			}
		})
	}
}
