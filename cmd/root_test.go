package cmd

import "testing"

func TestRunCmd_DefaultLogLevel_IsWarn(t *testing.T) {
	// GIVEN the run command with its registered flags
	flag := runCmd.Flags().Lookup("log")

	// WHEN we check the default value
	// THEN it must be "warn": console metrics use fmt, not logrus
	if flag == nil {
		t.Fatal("log flag must be registered")
	}
	if flag.DefValue != "warn" {
		t.Errorf("default log level = %q, want %q", flag.DefValue, "warn")
	}
}

func TestRunCmd_GraphFlag_DefaultsToRandom(t *testing.T) {
	flag := runCmd.Flags().Lookup("graph")
	if flag == nil {
		t.Fatal("graph flag must be registered")
	}
	if flag.DefValue != "random" {
		t.Errorf("default graph source = %q, want %q", flag.DefValue, "random")
	}
}

func TestRunCmd_DispatchPolicyFlag_DefaultsToFirstIdle(t *testing.T) {
	flag := runCmd.Flags().Lookup("dispatch-policy")
	if flag == nil {
		t.Fatal("dispatch-policy flag must be registered")
	}
	if flag.DefValue != "first-idle" {
		t.Errorf("default dispatch policy = %q, want %q", flag.DefValue, "first-idle")
	}
}

func TestRunCmd_NumTrucksAndOrders_DefaultPositive(t *testing.T) {
	trucks := runCmd.Flags().Lookup("num-trucks")
	orders := runCmd.Flags().Lookup("num-orders")
	if trucks == nil || orders == nil {
		t.Fatal("num-trucks and num-orders flags must be registered")
	}
	if trucks.DefValue == "0" || orders.DefValue == "0" {
		t.Errorf("fleet/order sizing defaults must be positive: trucks=%s orders=%s", trucks.DefValue, orders.DefValue)
	}
}
