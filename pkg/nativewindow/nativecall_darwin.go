//go:build darwin

package nativewindow

// nativeCallJS is the expression the injected bridge uses to hand a raw
// string to the host, matching the "nativewindow" WKScriptMessageHandler
// name registered in internal/platform's Cocoa backend.
const nativeCallJS = `window.webkit.messageHandlers.nativewindow.postMessage(text)`
