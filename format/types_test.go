package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectFromName(t *testing.T) {
	tests := []struct {
		name       string
		wantFormat SourceFormat
		wantComp   CompressionType
	}{
		{"run.csv", FormatCSV, CompressionNone},
		{"run.bin", FormatBinary, CompressionNone},
		{"/data/2025-11-19_MDP.BIN", FormatBinary, CompressionNone},
		{"run.bin.zst", FormatBinary, CompressionZstd},
		{"run.bin.zstd", FormatBinary, CompressionZstd},
		{"run.csv.lz4", FormatCSV, CompressionLZ4},
		{"run.bin.s2", FormatBinary, CompressionS2},
		{"run.bin.sz", FormatBinary, CompressionS2},
		{"run.csv.xz", FormatCSV, CompressionXZ},
		{"timetags", FormatCSV, CompressionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, c := DetectFromName(tt.name)
			require.Equal(t, tt.wantFormat, f)
			require.Equal(t, tt.wantComp, c)
		})
	}
}

func TestDetectCompressionByMagic(t *testing.T) {
	require.Equal(t, CompressionZstd, DetectCompressionByMagic([]byte{0x28, 0xb5, 0x2f, 0xfd, 0x00}))
	require.Equal(t, CompressionXZ, DetectCompressionByMagic([]byte{0xfd, '7', 'z', 'X', 'Z', 0x00, 0x00}))
	require.Equal(t, CompressionLZ4, DetectCompressionByMagic([]byte{0x04, 0x22, 0x4d, 0x18, 0x64}))
	require.Equal(t, CompressionS2, DetectCompressionByMagic([]byte("\xff\x06\x00\x00S2sTwO")))
	require.Equal(t, CompressionS2, DetectCompressionByMagic([]byte("\xff\x06\x00\x00sNaPpY")))
	require.Equal(t, CompressionNone, DetectCompressionByMagic([]byte("1000,1\n")))
	require.Equal(t, CompressionNone, DetectCompressionByMagic(nil))
}

func TestStringers(t *testing.T) {
	require.Equal(t, "CSV", FormatCSV.String())
	require.Equal(t, "Binary", FormatBinary.String())
	require.Equal(t, "Unknown", FormatUnknown.String())
	require.Equal(t, "XZ", CompressionXZ.String())
	require.Equal(t, "Unknown", CompressionType(0x42).String())
}
