package xb64

import (
	stdb64 "encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Vectors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"empty", "", nil},
		{"one byte", "AQ==", []byte{0x01}},
		{"two bytes", "ASM=", []byte{0x01, 0x23}},
		{"three bytes", "ASNF", []byte{0x01, 0x23, 0x45}},
		{"foo bar", "Zm9vIGJhcg==", []byte("foo bar")},
		{"sigils std", "++//", []byte{0xfb, 0xef, 0xff}},
		{"sigils url-safe", "--__", []byte{0xfb, 0xef, 0xff}},
		// 两种字母表的符号可以混用
		{"mixed sigils", "+-_/", []byte{0xfb, 0xef, 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.in), IgnoreNone)
			require.NoError(t, err)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_FullByteTable(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	got, err := Decode([]byte(stdb64.StdEncoding.EncodeToString(data)), IgnoreNone)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	got, err = Decode([]byte(stdb64.RawURLEncoding.EncodeToString(data)), IgnorePadding)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		// 末尾组不满 24 bit 且缺少填充
		{"missing padding 10", "Zm9vIGJhcg", ErrPadding},
		{"missing padding 3", "ASM", ErrPadding},
		{"missing padding 2", "AQ", ErrPadding},
		// 填充过多：24 bit 全为填充
		{"all padding", "====", ErrPadding},
		// 填充出现在非末尾组
		{"padding before final group", "AQ==AQ==", ErrPadding},
		{"padding before trailing byte", "AQ==\n", ErrPadding},
		// 字母表之外的符号
		{"wrong symbol space", "ASM ", ErrWrongSymbol},
		{"wrong symbol bang", "Zm9vIGJhcg!", ErrWrongSymbol},
		{"wrong symbol newline", "A\nQ=", ErrWrongSymbol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.in), IgnoreNone)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecode_IgnoreModes(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		ignore  Ignore
		want    []byte
		wantErr error
	}{
		// 忽略填充：末尾不完整组按可用 bit 输出
		{"padding: unpadded tail", "Zm9vIGJhcg", IgnorePadding, []byte("foo bar"), nil},
		{"padding: one byte", "AQ", IgnorePadding, []byte{0x01}, nil},
		// 忽略填充不放过非法符号
		{"padding: wrong symbol", "ASM ", IgnorePadding, nil, ErrWrongSymbol},
		// 非末尾组的填充在忽略模式下视为输入提前结束
		{"padding: early end", "AQ==AQ==", IgnorePadding, []byte{0x01}, nil},
		// 忽略非法符号：遇到即视为输入结束
		{"symbol: truncate", "Zm9vIGJh!", IgnoreWrongSymbol, []byte("foo ba"), nil},
		// 忽略非法符号不放过缺失的填充
		{"symbol: missing padding", "Zm9vIGJhcg", IgnoreWrongSymbol, nil, ErrPadding},
		// 双重忽略
		{"both", "Zm9vIGJhcg!", IgnorePaddingWrongSymbol, []byte("foo bar"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.in), tt.ignore)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeTo_BufferTooSmall(t *testing.T) {
	dst := make([]byte, 2)
	_, err := DecodeTo(dst, []byte("ASNF"), IgnoreNone)
	assert.ErrorIs(t, err, ErrBufferTooSmall)
}

func TestDecodeString(t *testing.T) {
	got, err := DecodeString("Zm9vIGJhcg==", IgnoreNone)
	require.NoError(t, err)
	assert.Equal(t, "foo bar", string(got))
}
