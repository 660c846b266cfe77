package intake

// Resolve returns where filename would be written without writing it
func (s *intakeService) Resolve(filename, destinationOverride, subfolderOverride string) (string, error) {
	normalized, err := s.validateFilename(filename)
	if err != nil {
		return "", err
	}

	spec, err := s.spec(destinationOverride, subfolderOverride)
	if err != nil {
		return "", err
	}

	return s.resolver.Resolve(spec, normalized)
}
