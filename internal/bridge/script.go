package bridge

import (
	"fmt"
	"strconv"
)

// DefaultMaxMessageSize mirrors ipc.MaxEnvelopeSize; kept as a local
// constant so this package has no import-cycle dependency on internal/ipc.
const DefaultMaxMessageSize = 1 << 20

// Options parameterizes the generated bridge bundle. NativeCallJS is the
// platform-specific expression that actually hands a string to the host
// (e.g. "window.webkit.messageHandlers.nativewindow.postMessage(text)" on
// macOS, "window.chrome.webview.postMessage(text)" on Windows); it is the
// one piece the platform adapter must supply, everything else in the
// bundle is platform-independent.
type Options struct {
	NativeCallJS     string
	ChannelPrefix    string
	MaxMessageSize   int
	CSP              string
	AllowCamera      bool
	AllowMicrophone  bool
	AllowFileSystem  bool
	AllowGeolocation bool
}

// jsString renders s as a double-quoted JavaScript string literal using
// the same escaping discipline as EscapeJSString.
func jsString(s string) string {
	return `"` + EscapeJSString(s) + `"`
}

func permissionShims(opts Options) string {
	var shims string
	if !opts.AllowGeolocation {
		shims += `try { delete navigator.geolocation; } catch (e) {}` + "\n"
	}
	if !opts.AllowCamera || !opts.AllowMicrophone {
		shims += `try {
    if (navigator.mediaDevices && navigator.mediaDevices.getUserMedia) {
      navigator.mediaDevices.getUserMedia = function() {
        return Promise.reject(new Error("permission denied by native window policy"));
      };
    }
  } catch (e) {}` + "\n"
	}
	if !opts.AllowFileSystem {
		shims += `try {
    if (window.showOpenFilePicker) window.showOpenFilePicker = undefined;
    if (window.showSaveFilePicker) window.showSaveFilePicker = undefined;
    if (window.showDirectoryPicker) window.showDirectoryPicker = undefined;
    if (navigator.storage && navigator.storage.getDirectory) navigator.storage.getDirectory = undefined;
  } catch (e) {}` + "\n"
	}
	return shims
}

func cspInjection(opts Options) string {
	if opts.CSP == "" {
		return ""
	}
	return fmt.Sprintf(`document.addEventListener("DOMContentLoaded", function() {
    var meta = document.createElement("meta");
    meta.httpEquiv = "Content-Security-Policy";
    meta.content = %s;
    document.head.appendChild(meta);
  });`, jsString(opts.CSP))
}

// GenerateBaseline builds the document-start bundle every window gets
// unconditionally at creation (spec.md §4.1 items a-d): a frozen
// window.ipc bridge, CSP meta injection, permission shims, and the
// window.open override. It never depends on a Channel existing — item
// (e), the typed-channel dispatch machinery, is layered on top by
// Generate only when a window's host code actually asks for one.
func GenerateBaseline(opts Options) string {
	if opts.NativeCallJS == "" {
		// Never reached by real platform adapters (they always set
		// this); keeps the template well-formed for direct testing.
		opts.NativeCallJS = "void 0"
	}

	return fmt.Sprintf(`(function() {
  "use strict";
  var _defineProperty = Object.defineProperty;
  var _freeze = Object.freeze;

  function _nativeBridge(text) {
    %s;
  }

  var _ipcImpl = { postMessage: function(text) { _nativeBridge(text); } };
  _defineProperty(_ipcImpl, "postMessage", { value: _ipcImpl.postMessage, writable: false, configurable: false });
  _defineProperty(window, "ipc", { value: _ipcImpl, writable: false, configurable: false });
  _freeze(window.ipc);

  %s

  %s

  window.open = function() { return null; };
})();
`, opts.NativeCallJS, cspInjection(opts), permissionShims(opts))
}

// channelSection renders item (e), the typed-channel dispatch machinery,
// built on top of the window.ipc.postMessage baseline rather than
// redefining its own native-call expression: Generate assumes
// GenerateBaseline's window.ipc is already (or is about to be, in the
// same script) in place.
func channelSection(opts Options) string {
	return fmt.Sprintf(`
  var _slice = Array.prototype.slice;
  var _push = Array.prototype.push;
  var _indexOf = Array.prototype.indexOf;
  var _splice = Array.prototype.splice;
  var _stringify = JSON.stringify;
  var _parse = JSON.parse;
  var _create = Object.create;

  var _MAX_SIZE = %s;
  var _pfx = %s;
  var _l = _create(null);
  var _el = [];
  var _orig = window.__native_message__;

  function _e(t, p) {
    var ch = _pfx ? (_pfx + ":" + t) : t;
    if (p === undefined) {
      return _stringify({ "$ch": ch });
    }
    return _stringify({ "$ch": ch, "p": p });
  }

  function _d(r) {
    if (typeof r !== "string" || r.length > _MAX_SIZE) return null;
    var v;
    try { v = _parse(r); } catch (e) { return null; }
    if (v === null || typeof v !== "object") return null;
    if (Object.prototype.hasOwnProperty.call(v, "__proto__")) {
      delete v["__proto__"];
    }
    if (typeof v["$ch"] !== "string") return null;
    return v;
  }

  function _notifyExternal(raw) {
    var snapshot = _slice.call(_el);
    for (var i = 0; i < snapshot.length; i++) {
      try { snapshot[i](raw); } catch (e) {}
    }
    if (typeof _orig === "function") {
      try { _orig(raw); } catch (e) {}
    }
  }

  function _unprefix(ch) {
    if (!_pfx) return ch;
    var want = _pfx + ":";
    if (ch.indexOf(want) !== 0) return null;
    return ch.slice(want.length);
  }

  function _dispatch(raw) {
    var env = _d(raw);
    if (env === null) { _notifyExternal(raw); return; }
    var name = _unprefix(env["$ch"]);
    if (name === null) { _notifyExternal(raw); return; }
    var handlers = _l[name];
    if (!handlers) { _notifyExternal(raw); return; }
    var snapshot = _slice.call(handlers);
    for (var i = 0; i < snapshot.length; i++) {
      try { snapshot[i](env["p"]); } catch (e) {}
    }
  }

  function _on(t, h) {
    if (typeof h !== "function") return;
    var arr = _l[t];
    if (!arr) { arr = []; _l[t] = arr; }
    if (_indexOf.call(arr, h) !== -1) return;
    _push.call(arr, h);
  }

  function _off(t, h) {
    var arr = _l[t];
    if (!arr) return;
    var idx = _indexOf.call(arr, h);
    if (idx !== -1) _splice.call(arr, idx, 1);
  }

  function _send(t, p) {
    window.ipc.postMessage(_e(t, p));
  }

  var _channel = { send: _send, on: _on, off: _off };
  _freeze(_channel);

  var _listenersApi = {
    add: function(fn) {
      if (typeof fn === "function" && _indexOf.call(_el, fn) === -1) _push.call(_el, fn);
    },
    remove: function(fn) {
      var idx = _indexOf.call(_el, fn);
      if (idx !== -1) _splice.call(_el, idx, 1);
    }
  };
  _freeze(_listenersApi);

  _defineProperty(window, "__native_message__", { value: _dispatch, writable: false, configurable: false });
  _defineProperty(window, "__channel__", { value: _channel, writable: false, configurable: false });
  _defineProperty(window, "__native_message_listeners__", { value: _listenersApi, writable: false, configurable: false });
`, strconv.Itoa(opts.MaxMessageSize), jsString(opts.ChannelPrefix))
}

// Generate builds the full document-start bundle described in spec.md
// §4.4, in the composition order from §4.1: frozen ipc bridge, CSP meta
// injection, permission shims, window.open override, then the typed
// channel. It replaces whatever GenerateBaseline already installed for a
// window — InstallDocumentStartScript on both platform backends applies
// replace, not append, semantics for exactly this reason. spec.md §9
// treats the exact template as an external interface that
// hardening tests assert against literally.
func Generate(opts Options) string {
	if opts.MaxMessageSize <= 0 {
		opts.MaxMessageSize = DefaultMaxMessageSize
	}
	if opts.NativeCallJS == "" {
		opts.NativeCallJS = "void 0"
	}

	return fmt.Sprintf(`(function() {
  "use strict";
  var _defineProperty = Object.defineProperty;
  var _freeze = Object.freeze;

  function _nativeBridge(text) {
    %s;
  }

  var _ipcImpl = { postMessage: function(text) { _nativeBridge(text); } };
  _defineProperty(_ipcImpl, "postMessage", { value: _ipcImpl.postMessage, writable: false, configurable: false });
  _defineProperty(window, "ipc", { value: _ipcImpl, writable: false, configurable: false });
  _freeze(window.ipc);

  %s

  %s

  window.open = function() { return null; };
%s})();
`, opts.NativeCallJS, cspInjection(opts), permissionShims(opts), channelSection(opts))
}
