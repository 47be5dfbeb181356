// Package main provides the CLI entrypoint for parcelable-generator.
//
// parcelable-generator reads a Java class declaration and prints the code
// making it Android Parcelable:
//   - A constructor restoring every field from a Parcel
//   - writeToParcel, describeContents and the CREATOR factory
//   - Warnings for fields no adapter could handle
package main

import (
	"os"

	"parcelable-generator/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
