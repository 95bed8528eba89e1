package lightsource

// InjectKeyDown queues a key down event from the keyboard device. The event
// is consumed on the next frame's input processing, in place of device input.
func (st *Stage) InjectKeyDown(key Key) {
	st.injectQueue = append(st.injectQueue, inputEvent{
		kind:   EventKeyDown,
		key:    key,
		device: KeyboardDeviceID,
	})
}

// InjectKeyUp queues a key up event from the keyboard device.
func (st *Stage) InjectKeyUp(key Key) {
	st.injectQueue = append(st.injectQueue, inputEvent{
		kind:   EventKeyUp,
		key:    key,
		device: KeyboardDeviceID,
	})
}

// InjectKeyPress is a convenience that queues a key down followed by a key
// up. Consumes two frames.
func (st *Stage) InjectKeyPress(key Key) {
	st.InjectKeyDown(key)
	st.InjectKeyUp(key)
}

// InjectConnected queues a device connected status event.
func (st *Stage) InjectConnected(deviceID int) {
	st.injectQueue = append(st.injectQueue, inputEvent{kind: EventConnected, device: deviceID})
}

// InjectDisconnected queues a device disconnected status event.
func (st *Stage) InjectDisconnected(deviceID int) {
	st.injectQueue = append(st.injectQueue, inputEvent{kind: EventDisconnected, device: deviceID})
}

// processInjectedInput pops one event from the inject queue and dispatches
// it. Returns true if an event was consumed (device input should be skipped).
func (st *Stage) processInjectedInput() bool {
	if len(st.injectQueue) == 0 {
		return false
	}
	ev := st.injectQueue[0]
	copy(st.injectQueue, st.injectQueue[1:])
	st.injectQueue = st.injectQueue[:len(st.injectQueue)-1]

	st.dispatchInput(ev)
	return true
}
