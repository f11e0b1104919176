package ports

// Backing is the raw persistence strategy behind a configuration document.
// Implementations read and write the complete serialized form in one shot.
type Backing interface {
	Read() (string, error)
	Write(data string) error
}
