/*
Copyright (C) 2022-2024 ApeCloud Co., Ltd

This file is part of gemini-koordinaten project

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package view

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/ed23x/gemini-koordinaten/pkg/dataset"
	"github.com/ed23x/gemini-koordinaten/pkg/util"
)

// watchFile calls load whenever path is written or replaced and sends the
// result to the program. The directory is watched so that editors which
// save by renaming are noticed too.
func watchFile(path string, load func() (*dataset.Dataset, error), send func(tea.Msg)) (func(), error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create file watcher")
	}
	if err = w.Add(filepath.Dir(abs)); err != nil {
		util.CloseQuietly(w)
		return nil, errors.Wrapf(err, "failed to watch %s", path)
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					continue
				}
				ds, err := load()
				if err != nil {
					klog.V(1).Infof("reload %s: %v", path, err)
				}
				send(reloadMsg{ds: ds, err: err})
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				klog.Errorf("watch %s: %v", path, err)
			case <-done:
				return
			}
		}
	}()
	return func() {
		close(done)
		util.CloseQuietly(w)
	}, nil
}
