package web

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

const (
	msgStartSessionFirst  = "Start a session first!"
	msgSelectExercise     = "Select an exercise!"
	msgSelectActivity     = "Select an activity!"
	msgEnterWeight        = "Enter a weight!"
	msgSessionStarted     = "Session started! 💪"
	msgSessionEnded       = "Session ended!"
	msgSessionNotStarted  = "Failed to start session."
	msgSetLogged          = "Set logged! 🔥"
	msgCardioLogged       = "Cardio logged! 🏃"
	msgWeightSaved        = "Weight saved! ⚖️"
	msgExerciseAdded      = "Exercise added!"
	msgBackendUnavailable = "Backend unavailable, try again."

	msgNameRequired        = "Name is required."
	msgFailedToAddExercise = "Failed to add exercise."
)

type Toast struct {
	Kind    ToastKind
	Message string
}
