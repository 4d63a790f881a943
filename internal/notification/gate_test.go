package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

var allKinds = []string{
	KindTaskAssigned, KindTaskCompleted, KindTaskComment, KindMention,
	KindDeadline, KindShiftAssigned, KindShiftSwap, KindTimeOff, KindMessage,
	KindShiftReminder, KindReportReady, KindBirthday, KindSystem, KindChat,
}

func TestResolve_NoRowDefaultsOpen(t *testing.T) {
	for _, kind := range allKinds {
		require.True(t, resolveEmail(nil, kind), "email gate for %s must default open", kind)
		require.True(t, resolvePush(nil, kind), "push gate for %s must default open", kind)
	}
}

func TestGate_FailOpenWithoutPreferenceRow(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "gate_fail_open")
	mustCreateCompany(t, client, "co-1")
	mustCreateUser(t, client, "co-1", "user-1", "one@acme.test")

	gate := NewGate(client)
	ctx := context.Background()
	for _, kind := range allKinds {
		require.True(t, gate.ShouldSendEmail(ctx, "user-1", kind))
		require.True(t, gate.ShouldSendPush(ctx, "user-1", kind))
	}
}

func TestGate_PerEventFlags(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "gate_per_event")
	mustCreateCompany(t, client, "co-1")
	mustCreateUser(t, client, "co-1", "user-1", "one@acme.test")
	pref := mustCreatePreference(t, client, "user-1", nil)

	pref = pref.Update().
		SetEmailOnShiftSwap(false).
		SetPushOnMention(false).
		SaveX(context.Background())

	require.False(t, resolveEmail(pref, KindShiftSwap))
	require.True(t, resolveEmail(pref, KindTaskAssigned))
	require.False(t, resolvePush(pref, KindMention))
	require.True(t, resolvePush(pref, KindShiftSwap))

	gate := NewGate(client)
	ctx := context.Background()
	require.False(t, gate.ShouldSendEmail(ctx, "user-1", KindShiftSwap))
	require.True(t, gate.ShouldSendPush(ctx, "user-1", KindShiftSwap))
}

func TestResolvePush_MasterSwitchKillsEverything(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "gate_kill_switch")
	mustCreateCompany(t, client, "co-1")
	mustCreateUser(t, client, "co-1", "user-1", "one@acme.test")
	pref := mustCreatePreference(t, client, "user-1", nil)

	pref = pref.Update().
		SetPushEnabled(false).
		SetPushOnMessage(true).
		SetPushOnShiftSwap(true).
		SaveX(context.Background())

	for _, kind := range allKinds {
		require.False(t, resolvePush(pref, kind), "push gate for %s must be closed by master switch", kind)
	}
	// Email is unaffected by the push master switch.
	require.True(t, resolveEmail(pref, KindMessage))
}

func TestResolve_FallbackKindsUseMessageGate(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "gate_fallback")
	mustCreateCompany(t, client, "co-1")
	mustCreateUser(t, client, "co-1", "user-1", "one@acme.test")
	pref := mustCreatePreference(t, client, "user-1", nil)

	pref = pref.Update().
		SetEmailOnMessage(false).
		SetPushOnMessage(false).
		SaveX(context.Background())

	for _, kind := range []string{KindShiftReminder, KindReportReady, KindBirthday, KindSystem, KindChat} {
		require.False(t, resolveEmail(pref, kind), "email gate for %s must follow the message gate", kind)
		require.False(t, resolvePush(pref, kind), "push gate for %s must follow the message gate", kind)
	}
}
