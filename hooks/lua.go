// Package hooks implements the named lifecycle hook registry used to extend source attachment.
package hooks

import (
	"fmt"
	"path/filepath"

	"github.com/dashbridge/dashbridge/constant"
	"github.com/dashbridge/dashbridge/filesystem"
	"github.com/dashbridge/dashbridge/host"
	"github.com/dashbridge/dashbridge/log"
	"github.com/dashbridge/dashbridge/where"
	libs "github.com/metafates/mangal-lua-libs"
	lua "github.com/yuin/gopher-lua"
)

// luaHook wraps one loaded script state and exposes it as an updatesource hook.
type luaHook struct {
	name  string
	state *lua.LState
}

// LoadScripts discovers .lua scripts in the hooks directory and registers each as
// an updatesource hook, in lexical filename order. A script must define a global
// updatesource(url, mime) function returning the rewritten url and mime.
func LoadScripts(r *Registry) error {
	files, err := filesystem.API().ReadDir(where.Hooks())
	if err != nil {
		return fmt.Errorf("read hooks directory: %w", err)
	}

	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".lua" {
			continue
		}

		h, err := loadScript(filepath.Join(where.Hooks(), f.Name()))
		if err != nil {
			// A broken script must not take the whole load down.
			log.Warnf("skipping hook script %s: %v", f.Name(), err)
			continue
		}

		r.Register(UpdateSource, h.run)
		log.Infof("registered lua hook %s", h.name)
	}

	return nil
}

// loadScript compiles and validates a single hook script.
func loadScript(path string) (*luaHook, error) {
	contents, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, err
	}

	state := lua.NewState()
	libs.Preload(state)

	if err := state.DoString(string(contents)); err != nil {
		return nil, fmt.Errorf("execute script: %w", err)
	}

	if state.GetGlobal(constant.UpdateSourceFn).Type() != lua.LTFunction {
		return nil, fmt.Errorf("function %s is required but not defined", constant.UpdateSourceFn)
	}

	name := filepath.Base(path)
	return &luaHook{name: name, state: state}, nil
}

// run adapts the script's updatesource function to the registry's Hook signature.
// On any script failure the working value passes through unchanged.
func (h *luaHook) run(v interface{}) interface{} {
	src, ok := v.(host.Source)
	if !ok {
		return v
	}

	err := h.state.CallByParam(lua.P{
		Fn:      h.state.GetGlobal(constant.UpdateSourceFn),
		NRet:    2,
		Protect: true,
	}, lua.LString(src.URL), lua.LString(src.MimeType))
	if err != nil {
		log.Warnf("hook script %s: %v", h.name, err)
		return v
	}

	mime := h.state.Get(-1)
	url := h.state.Get(-2)
	h.state.Pop(2)

	if url.Type() == lua.LTString {
		src.URL = url.String()
	}
	if mime.Type() == lua.LTString {
		src.MimeType = mime.String()
	}
	return src
}
