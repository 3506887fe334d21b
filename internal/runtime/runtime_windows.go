//go:build windows

package runtime

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

// bootstrapperURL is Microsoft's stable redirect that always resolves to
// the current WebView2 Evergreen Bootstrapper (~2MB), grounded on
// original_source/runtime.rs's BOOTSTRAPPER_URL constant.
const bootstrapperURL = "https://go.microsoft.com/fwlink/p/?LinkId=2124703"

// minInstallerBytes rejects a truncated or intercepted download before any
// signature check runs.
const minInstallerBytes = 1024

// CheckRuntime probes for an installed WebView2 runtime by calling
// GetAvailableCoreWebView2BrowserVersionString from WebView2Loader.dll via
// golang.org/x/sys/windows, mirroring original_source's windows-rs binding
// to the same Win32 entry point.
func CheckRuntime() Info {
	version, err := getAvailableCoreWebView2BrowserVersionString()
	if err != nil || version == "" || version == "0.0.0.0" {
		return Info{Available: false, Platform: "windows"}
	}
	return Info{Available: true, Version: version, Platform: "windows"}
}

func getAvailableCoreWebView2BrowserVersionString() (string, error) {
	dll := windows.NewLazySystemDLL("WebView2Loader.dll")
	proc := dll.NewProc("GetAvailableCoreWebView2BrowserVersionString")
	if err := proc.Find(); err != nil {
		return "", err
	}

	var versionPtr uintptr
	ret, _, _ := proc.Call(0, uintptr(unsafe.Pointer(&versionPtr)))
	if ret != 0 || versionPtr == 0 {
		return "", fmt.Errorf("runtime: GetAvailableCoreWebView2BrowserVersionString failed (hresult=0x%x)", ret)
	}
	defer windows.CoTaskMemFree(unsafe.Pointer(versionPtr))

	return windows.UTF16PtrToString((*uint16)(unsafe.Pointer(versionPtr))), nil
}

// EnsureRuntime downloads and silently installs the WebView2 Evergreen
// Bootstrapper when CheckRuntime reports the engine missing. See
// SPEC_FULL.md §4 for the full security contract this mirrors from
// original_source's ensure_runtime_windows: fixed HTTPS redirect URL,
// minimum-size check, Authenticode signature verification requiring
// "O=Microsoft Corporation", fail-closed on any verification problem,
// and guaranteed installer cleanup on every exit path.
//
// Callers must not invoke this under an elevated process without the
// user's explicit consent — the silent installer applies system-wide.
func EnsureRuntime() (Info, error) {
	if info := CheckRuntime(); info.Available {
		return info, nil
	}

	installerPath := filepath.Join(os.TempDir(), "MicrosoftEdgeWebview2Setup.exe")
	defer os.Remove(installerPath)

	if err := downloadBootstrapper(installerPath); err != nil {
		return Info{}, err
	}
	if err := verifyBootstrapperSignature(installerPath); err != nil {
		return Info{}, err
	}
	if err := runBootstrapperSilently(installerPath); err != nil {
		return Info{}, err
	}

	info := CheckRuntime()
	if !info.Available {
		return Info{}, fmt.Errorf("runtime: WebView2 installation appeared to succeed but the runtime is still not detected")
	}
	return info, nil
}

// psQuote escapes a string for safe interpolation inside a single-quoted
// PowerShell literal, per original_source's replace('\'', "''").
func psQuote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func downloadBootstrapper(installerPath string) error {
	cmd := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command",
		fmt.Sprintf("Invoke-WebRequest -Uri '%s' -OutFile '%s' -UseBasicParsing",
			psQuote(bootstrapperURL), psQuote(installerPath)))
	out, err := cmd.CombinedOutput()
	if err != nil {
		os.Remove(installerPath)
		return fmt.Errorf("runtime: failed to download WebView2 bootstrapper: %s", strings.TrimSpace(string(out)))
	}

	stat, err := os.Stat(installerPath)
	if err != nil {
		os.Remove(installerPath)
		return fmt.Errorf("runtime: cannot read downloaded WebView2 bootstrapper: %w", err)
	}
	if stat.Size() < minInstallerBytes {
		os.Remove(installerPath)
		return fmt.Errorf("runtime: downloaded WebView2 bootstrapper is suspiciously small (< %d bytes); the download may have been truncated or intercepted", minInstallerBytes)
	}
	return nil
}

func verifyBootstrapperSignature(installerPath string) error {
	script := fmt.Sprintf(`$sig = Get-AuthenticodeSignature -FilePath '%s';
if ($sig.Status -ne 'Valid') {
  Write-Error "Authenticode signature is not valid: $($sig.Status). StatusMessage: $($sig.StatusMessage)";
  exit 1
}
$signer = $sig.SignerCertificate.Subject;
if ($signer -notlike '*O=Microsoft Corporation*') {
  Write-Error "Unexpected signer: $signer";
  exit 1
}`, psQuote(installerPath))

	cmd := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", script)
	out, err := cmd.CombinedOutput()
	if err != nil {
		// Whether PowerShell itself is unavailable or the signature check
		// failed, refuse to execute an unverified binary (fail-closed).
		return fmt.Errorf("runtime: WebView2 bootstrapper failed signature verification: %s", strings.TrimSpace(string(out)))
	}
	return nil
}

func runBootstrapperSilently(installerPath string) error {
	cmd := exec.Command(installerPath, "/silent", "/install")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("runtime: failed to run WebView2 bootstrapper: %w", err)
	}
	return nil
}
