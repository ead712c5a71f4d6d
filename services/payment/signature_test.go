package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSignature_knownVector(t *testing.T) {
	// HMAC-SHA256("order_1|pay_1") keyed with "secret".
	const expected = "52115a0d3400de9e86aade1f1b6eba9e8974604f4e267a9e9a16633a4c8dd2cb"
	assert.Equal(t, expected, ComputeSignature("order_1", "pay_1", "secret"))
	assert.True(t, VerifySignature("order_1", "pay_1", "secret", expected))
}

func TestVerifySignature_roundTrip(t *testing.T) {
	sig := ComputeSignature("order_abc", "pay_xyz", "topsecret")
	assert.True(t, VerifySignature("order_abc", "pay_xyz", "topsecret", sig))
}

func TestVerifySignature_rejectsTampering(t *testing.T) {
	sig := ComputeSignature("order_abc", "pay_xyz", "topsecret")

	assert.False(t, VerifySignature("order_abc", "pay_other", "topsecret", sig))
	assert.False(t, VerifySignature("order_other", "pay_xyz", "topsecret", sig))
	assert.False(t, VerifySignature("order_abc", "pay_xyz", "wrongsecret", sig))
	assert.False(t, VerifySignature("order_abc", "pay_xyz", "topsecret", sig[:63]+"0"))
}

func TestVerifySignature_emptySignature(t *testing.T) {
	assert.False(t, VerifySignature("order_abc", "pay_xyz", "topsecret", ""))
}
