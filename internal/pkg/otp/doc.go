// Package otp issues and redeems short-lived email one-time passcodes.
//
// Each (purpose, email) pair holds at most one active code. Issuing a new code
// replaces the previous one, and redeeming is atomic and single-use: a code
// can verify at most one request, after which it is gone. Codes are stored
// hashed so a compromised store does not leak usable codes.
package otp
