package content

// DefaultNotes is the built-in notes table in display order.
func DefaultNotes() []TopicEntry {
	return []TopicEntry{
		{Name: "DOM API", File: "notes/dom_api.md", Subtopics: []string{
			"getElementById", "querySelector", "addEventListener", "getBoundingClientRect", "innerHTML vs textContent vs innerText",
		}},
		{Name: "Fetch API", File: "notes/fetch_api.md"},
		{Name: "Web Storage API", File: "notes/web_storage_api.md", Subtopics: []string{
			"LocalStorage", "SessionStorage", "Cookies",
		}},
		{Name: "Geolocation API", File: "notes/geolocation_api.md"},
		{Name: "Canvas API", File: "notes/canvas_api.md"},
		{Name: "Web Socket API", File: "notes/web_socket_api.md"},
		{Name: "Intersection Observer API", File: "notes/intersection_observer_api.md"},
		{Name: "Notification & Clipboard API", File: "notes/notification_clipboard_api.md"},
		{Name: "Web Workers API", File: "notes/web_workers_api.md"},
		{Name: "History & Location API", File: "notes/history_location_api.md"},
		{Name: "Event Handling API", File: "notes/event_handling_api.md", Subtopics: []string{
			"addEventListener", "event delegation", "event bubbling vs. capturing",
		}},
		{Name: "MutationObserver API", File: "notes/mutation_observer_api.md"},
		{Name: "Media Devices API", File: "notes/media_devices_api.md"},
	}
}

// DefaultInterview is the built-in interview questions table in display order.
func DefaultInterview() []TopicEntry {
	return []TopicEntry{
		{Name: "HTML", File: "interviewQuestions/html.md"},
		{Name: "CSS", File: "interviewQuestions/css.md"},
		{Name: "Web APIs", File: "interviewQuestions/web_api.md"},
	}
}
