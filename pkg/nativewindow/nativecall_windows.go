//go:build windows

package nativewindow

// nativeCallJS is the expression the injected bridge uses to hand a raw
// string to the host, matching WebView2's window.chrome.webview message
// channel.
const nativeCallJS = `window.chrome.webview.postMessage(text)`
