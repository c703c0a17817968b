// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

package usbtopo

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// sampleReport is a realistic debugfs listing with the scanner as the
// second device. The hub before it carries its own Vendor/ProdID pair.
const sampleReport = `T:  Bus=01 Lev=00 Prnt=00 Port=00 Cnt=00 Dev#=  1 Spd=480  MxCh= 4
D:  Ver= 2.00 Cls=09(hub  ) Sub=00 Prot=01 MxPS=64 #Cfgs=  1
P:  Vendor=1d6b ProdID=0002 Rev= 6.01
S:  Manufacturer=Linux 6.1.0 ehci_hcd
S:  Product=EHCI Host Controller

T:  Bus=01 Lev=01 Prnt=01 Port=02 Cnt=01 Dev#=  5 Spd=12   MxCh= 0
D:  Ver= 2.00 Cls=02(comm.) Sub=00 Prot=00 MxPS= 8 #Cfgs=  1
P:  Vendor=1965 ProdID=0017 Rev= 0.01
S:  Manufacturer=Uniden America Corp.
S:  Product=BC125AT
C:* #Ifs= 2 Cfg#= 1 Atr=c0 MxPwr=500mA
`

func TestScanFindsScanner(t *testing.T) {
	ids, found := Scan(strings.NewReader(sampleReport), DefaultMatch)
	if !found {
		t.Fatal("scanner not found in sample report")
	}
	if ids.Vendor != "1965" || ids.Product != "0017" {
		t.Errorf("identifiers = %+v, want Vendor=1965 Product=0017", ids)
	}
}

func TestScanCRLFInput(t *testing.T) {
	input := "T: Bus=01 Lev=00 Prnt=00\r\nS: Product=BC125AT Scanner\r\nVendor=1965\r\nProdID=0017\r\n"
	ids, found := Scan(strings.NewReader(input), DefaultMatch)
	if !found {
		t.Fatal("scanner not found")
	}
	if ids.Vendor != "1965" || ids.Product != "0017" {
		t.Errorf("identifiers = %+v, want Vendor=1965 Product=0017", ids)
	}
}

func TestScanNoMatch(t *testing.T) {
	input := "P:  Vendor=1965 ProdID=0017 Rev= 0.01\nS:  Product=Some Other Radio\n"
	ids, found := Scan(strings.NewReader(input), DefaultMatch)
	if found {
		t.Errorf("found = true for report without the match substring, ids = %+v", ids)
	}
}

// TestScanBlockBoundaryResetsFields covers the cross-device leakage
// case: an earlier device contributes plausible-looking ids, a block
// boundary separates it from the target, and the result must carry
// only the target block's values.
func TestScanBlockBoundaryResetsFields(t *testing.T) {
	input := strings.Join([]string{
		"P:  Vendor=dead ProdID=beef Rev= 1.00",
		"S:  Product=Unrelated Widget",
		"",
		"T:  Bus=01 Lev=01 Prnt=01 Port=00 Cnt=01 Dev#=  3 Spd=12",
		"S:  Product=BC125AT",
		"P:  Vendor=1965 ProdID=0017 Rev= 0.01",
		"",
	}, "\n")

	ids, found := Scan(strings.NewReader(input), DefaultMatch)
	if !found {
		t.Fatal("scanner not found")
	}
	if ids.Vendor != "1965" || ids.Product != "0017" {
		t.Errorf("identifiers leaked from earlier block: %+v", ids)
	}
}

// TestScanFoundFlagIsSticky pins down the sticky-found semantics:
// once the match substring has been seen, a later block's identifiers
// complete the scan even though they belong to a different device.
func TestScanFoundFlagIsSticky(t *testing.T) {
	input := strings.Join([]string{
		"S:  SerialNumber=BC125AT-owner-label",
		"",
		"P:  Vendor=aaaa ProdID=bbbb Rev= 1.00",
	}, "\n")

	ids, found := Scan(strings.NewReader(input), DefaultMatch)
	if !found {
		t.Fatal("found flag should be sticky after the first match")
	}
	if ids.Vendor != "aaaa" || ids.Product != "bbbb" {
		t.Errorf("identifiers = %+v, want the later block's aaaa/bbbb", ids)
	}
}

func TestScanStopsAtFirstCompleteBlock(t *testing.T) {
	input := strings.Join([]string{
		"S:  Product=BC125AT",
		"P:  Vendor=1965 ProdID=0017 Rev= 0.01",
		"",
		"P:  Vendor=ffff ProdID=ffff Rev= 9.99",
	}, "\n")

	ids, _ := Scan(strings.NewReader(input), DefaultMatch)
	if ids.Vendor != "1965" || ids.Product != "0017" {
		t.Errorf("scan kept reading past completion: %+v", ids)
	}
}

func TestScanFoundWithIncompleteIdentifiers(t *testing.T) {
	input := "S:  Product=BC125AT\nP:  Vendor=1965 Rev= 0.01\n"
	ids, found := Scan(strings.NewReader(input), DefaultMatch)
	if !found {
		t.Fatal("device line present, found must be true")
	}
	if ids.Vendor != "1965" || ids.Product != "" {
		t.Errorf("identifiers = %+v, want Vendor=1965 Product=\"\"", ids)
	}
}

func TestScanTruncatesLongTokens(t *testing.T) {
	input := "S:  Product=BC125AT\nP:  Vendor=0123456789abcdefgh ProdID=0017\n"
	ids, _ := Scan(strings.NewReader(input), DefaultMatch)
	if want := "0123456789abcde"; ids.Vendor != want {
		t.Errorf("Vendor = %q, want truncated %q", ids.Vendor, want)
	}
}

func TestScanSourcesPriorityOrder(t *testing.T) {
	dir := t.TempDir()
	legacy := filepath.Join(dir, "legacy")
	debugfs := filepath.Join(dir, "debugfs")

	writeReport := func(path, vendor string) {
		t.Helper()
		content := "S:  Product=BC125AT\nP:  Vendor=" + vendor + " ProdID=0017\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	writeReport(legacy, "1111")
	writeReport(debugfs, "2222")

	ids, found, err := ScanSources([]string{legacy, debugfs}, DefaultMatch)
	if err != nil || !found {
		t.Fatalf("ScanSources: found=%v err=%v", found, err)
	}
	if ids.Vendor != "1111" {
		t.Errorf("Vendor = %q, want the first source's 1111", ids.Vendor)
	}
}

func TestScanSourcesFallback(t *testing.T) {
	dir := t.TempDir()
	debugfs := filepath.Join(dir, "debugfs")
	content := "S:  Product=BC125AT\nP:  Vendor=1965 ProdID=0017\n"
	if err := os.WriteFile(debugfs, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", debugfs, err)
	}

	ids, found, err := ScanSources(
		[]string{filepath.Join(dir, "missing"), debugfs}, DefaultMatch)
	if err != nil || !found {
		t.Fatalf("ScanSources: found=%v err=%v", found, err)
	}
	if ids.Vendor != "1965" || ids.Product != "0017" {
		t.Errorf("identifiers = %+v", ids)
	}
}

func TestScanSourcesNoneOpenable(t *testing.T) {
	dir := t.TempDir()
	_, found, err := ScanSources(
		[]string{filepath.Join(dir, "a"), filepath.Join(dir, "b")}, DefaultMatch)
	if !errors.Is(err, ErrNoTopologySource) {
		t.Errorf("err = %v, want ErrNoTopologySource", err)
	}
	if found {
		t.Error("found = true with no readable source")
	}
}
