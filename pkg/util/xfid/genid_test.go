package xfid

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 清空全部相关环境变量，让测试从指定策略开始。
func clearGeneratorEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvGeneratorID, "")
	t.Setenv(EnvPodName, "")
	t.Setenv(EnvHostname, "")
}

func TestDefaultGeneratorID_Env(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    uint16
		wantErr bool
	}{
		{"zero", "0", 0, false},
		{"typical", "42", 42, false},
		{"max", "1023", 1023, false},
		{"out of range", "1024", 0, true},
		{"negative", "-1", 0, true},
		{"not a number", "abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearGeneratorEnv(t)
			t.Setenv(EnvGeneratorID, tt.value)

			got, err := DefaultGeneratorID()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrGeneratorOverflow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultGeneratorID_PodName(t *testing.T) {
	clearGeneratorEnv(t)
	t.Setenv(EnvPodName, "payment-7f8d9c-x2v4z")

	got, err := DefaultGeneratorID()
	require.NoError(t, err)
	assert.Equal(t, hashToGeneratorID("payment-7f8d9c-x2v4z"), got)

	// 同一 Pod 名称必须得到同一标识
	again, err := DefaultGeneratorID()
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestDefaultGeneratorID_HostnameEnv(t *testing.T) {
	clearGeneratorEnv(t)
	t.Setenv(EnvHostname, "node-7.internal")

	got, err := DefaultGeneratorID()
	require.NoError(t, err)
	assert.Equal(t, hashToGeneratorID("node-7.internal"), got)
}

func TestDefaultGeneratorID_OSHostname(t *testing.T) {
	clearGeneratorEnv(t)
	orig := osHostname
	osHostname = func() (string, error) { return "build-agent-03", nil }
	defer func() { osHostname = orig }()

	got, err := DefaultGeneratorID()
	require.NoError(t, err)
	assert.Equal(t, hashToGeneratorID("build-agent-03"), got)
}

func TestDefaultGeneratorID_PrivateIP(t *testing.T) {
	clearGeneratorEnv(t)
	origHostname := osHostname
	origAddrs := netInterfaceAddrs
	osHostname = func() (string, error) { return "", errors.New("hostname unavailable") }
	netInterfaceAddrs = func() ([]net.Addr, error) {
		return []net.Addr{
			// 回环与公网地址都要被跳过
			&net.IPNet{IP: net.ParseIP("127.0.0.1"), Mask: net.CIDRMask(8, 32)},
			&net.IPNet{IP: net.ParseIP("8.8.8.8"), Mask: net.CIDRMask(32, 32)},
			&net.IPNet{IP: net.ParseIP("10.1.2.3"), Mask: net.CIDRMask(8, 32)},
		}, nil
	}
	defer func() {
		osHostname = origHostname
		netInterfaceAddrs = origAddrs
	}()

	got, err := DefaultGeneratorID()
	require.NoError(t, err)
	// 10.1.2.3 的低 10 位：(2<<8 | 3) & 0x3ff
	assert.Equal(t, uint16(0x203), got)
}

func TestDefaultGeneratorID_AllStrategiesExhausted(t *testing.T) {
	clearGeneratorEnv(t)
	origHostname := osHostname
	origAddrs := netInterfaceAddrs
	osHostname = func() (string, error) { return "", errors.New("hostname unavailable") }
	netInterfaceAddrs = func() ([]net.Addr, error) {
		return []net.Addr{
			&net.IPNet{IP: net.ParseIP("8.8.8.8"), Mask: net.CIDRMask(32, 32)},
		}, nil
	}
	defer func() {
		osHostname = origHostname
		netInterfaceAddrs = origAddrs
	}()

	_, err := DefaultGeneratorID()
	assert.ErrorIs(t, err, ErrNoPrivateAddress)
}

func TestHashToGeneratorID(t *testing.T) {
	samples := []string{"", "a", "node-1", "node-2", "payment-7f8d9c-x2v4z", "一个中文主机名"}
	for _, s := range samples {
		got := hashToGeneratorID(s)
		assert.LessOrEqual(t, got, MaxGenerator, "s=%q", s)
		assert.Equal(t, got, hashToGeneratorID(s), "s=%q", s)
	}
}
