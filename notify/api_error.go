package notify

import "feedsync/remote"

// APIError maps a collaborator failure to a human title/message pair
// and enqueues it as an error notification. The optional context names
// the action that failed, e.g. "loading the news feed".
func (d *Dispatcher) APIError(err error, context string) ID {
	if err == nil {
		return 0
	}

	title := "Something went wrong"
	message := context

	switch {
	case remote.IsNotFound(err):
		title = "Not found"
		if message == "" {
			message = "The requested content does not exist."
		}
	case remote.IsValidation(err):
		title = "Unexpected server response"
		if message == "" {
			message = "The server sent data this application could not understand."
		}
	case remote.IsNetwork(err):
		title = "Connection problem"
		if message == "" {
			message = "Please check your connection and try again."
		}
	default:
		if message == "" {
			message = err.Error()
		}
	}

	d.log.Printf("API failure (%s): %+v", title, err)

	return d.Add(Error, title, message)
}
