package xb64

import (
	stdb64 "encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_Vectors(t *testing.T) {
	tests := []struct {
		name string
		enc  Encoding
		in   []byte
		want string
	}{
		{"empty", Std, nil, ""},
		{"one byte padded", Std, []byte{0x01}, "AQ=="},
		{"one byte unpadded", Std.WithoutPadding(), []byte{0x01}, "AQ"},
		{"two bytes padded", Std, []byte{0x01, 0x23}, "ASM="},
		{"two bytes unpadded", Std.WithoutPadding(), []byte{0x01, 0x23}, "ASM"},
		{"three bytes", Std, []byte{0x01, 0x23, 0x45}, "ASNF"},
		{"foo bar padded", Std, []byte("foo bar"), "Zm9vIGJhcg=="},
		{"foo bar unpadded", Std.WithoutPadding(), []byte("foo bar"), "Zm9vIGJhcg"},
		{"sigils std", Std, []byte{0xfb, 0xef, 0xff}, "++//"},
		{"sigils url-safe", URLSafe, []byte{0xfb, 0xef, 0xff}, "--__"},
		{"url-safe foo bar", URLSafe, []byte("foo bar"), "Zm9vIGJhcg=="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(tt.enc.Encode(tt.in)))
			assert.Equal(t, tt.want, tt.enc.EncodeString(tt.in))
		})
	}
}

// 以标准库为参照，覆盖全部 256 个字节值。
func TestEncode_FullByteTable(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	assert.Equal(t, stdb64.StdEncoding.EncodeToString(data), string(Std.Encode(data)))
	assert.Equal(t, stdb64.RawStdEncoding.EncodeToString(data), string(Std.WithoutPadding().Encode(data)))
	assert.Equal(t, stdb64.URLEncoding.EncodeToString(data), string(URLSafe.Encode(data)))
	assert.Equal(t, stdb64.RawURLEncoding.EncodeToString(data), string(URLSafe.WithoutPadding().Encode(data)))
}

func TestEncodedLen(t *testing.T) {
	for n := 0; n <= 9; n++ {
		padded := Std.EncodedLen(n)
		unpadded := Std.WithoutPadding().EncodedLen(n)
		assert.Equal(t, stdb64.StdEncoding.EncodedLen(n), padded, "padded n=%d", n)
		assert.Equal(t, stdb64.RawStdEncoding.EncodedLen(n), unpadded, "unpadded n=%d", n)
	}
}

func TestEncodeTo(t *testing.T) {
	t.Run("exact capacity", func(t *testing.T) {
		dst := make([]byte, 4)
		n, err := Std.EncodeTo(dst, []byte{0x01})
		require.NoError(t, err)
		assert.Equal(t, 4, n)
		assert.Equal(t, "AQ==", string(dst[:n]))
	})

	t.Run("unpadded exact capacity", func(t *testing.T) {
		// 不带填充时只需要无填充长度，被截断的符号不占容量
		dst := make([]byte, 2)
		n, err := Std.WithoutPadding().EncodeTo(dst, []byte{0x01})
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, "AQ", string(dst[:n]))
	})

	t.Run("padded too small", func(t *testing.T) {
		dst := make([]byte, 3)
		_, err := Std.EncodeTo(dst, []byte{0x01})
		assert.ErrorIs(t, err, ErrBufferTooSmall)
	})

	t.Run("unpadded too small", func(t *testing.T) {
		dst := make([]byte, 1)
		_, err := Std.WithoutPadding().EncodeTo(dst, []byte{0x01})
		assert.ErrorIs(t, err, ErrBufferTooSmall)
	})

	t.Run("oversized buffer", func(t *testing.T) {
		dst := make([]byte, 64)
		n, err := URLSafe.WithoutPadding().EncodeTo(dst, []byte("foo bar"))
		require.NoError(t, err)
		assert.Equal(t, "Zm9vIGJhcg", string(dst[:n]))
	})
}
