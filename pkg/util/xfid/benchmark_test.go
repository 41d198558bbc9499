package xfid

import "testing"

// =============================================================================
// 签发与形式转换基准测试
// =============================================================================

func BenchmarkGenerator_Next(b *testing.B) {
	gen, err := NewGenerator(42)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		if _, err := gen.Next(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_, _ = New(0x1F37B5BFDFA, 0x2F8, 0x1CC)
	}
}

func BenchmarkID_String(b *testing.B) {
	id := ID(0x3e6f6b7fbf4be1cc)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_ = id.String()
	}
}

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_, _ = Parse("Pm9rf79L4cw")
	}
}
