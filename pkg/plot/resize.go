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

package plot

// ResizeSource delivers container size notifications.
// Subscribe returns a function that cancels the subscription.
type ResizeSource interface {
	Subscribe(fn func(Size)) (cancel func())
}

// ResizeNotifier is a ResizeSource fed by the host's layout code.
// It is not safe for concurrent use.
type ResizeNotifier struct {
	next int
	subs map[int]func(Size)
	last *Size
}

func NewResizeNotifier() *ResizeNotifier {
	return &ResizeNotifier{subs: make(map[int]func(Size))}
}

// Subscribe registers fn. If a size was already notified, fn is called with it.
func (n *ResizeNotifier) Subscribe(fn func(Size)) func() {
	id := n.next
	n.next++
	n.subs[id] = fn
	if n.last != nil {
		fn(*n.last)
	}
	return func() {
		delete(n.subs, id)
	}
}

// Notify sends size to every subscriber. Repeating the last size is a no-op.
func (n *ResizeNotifier) Notify(size Size) {
	if n.last != nil && *n.last == size {
		return
	}
	n.last = &size
	for _, fn := range n.subs {
		fn(size)
	}
}
