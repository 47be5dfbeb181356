package gen

import (
	"fmt"
	"strings"
	"text/template"
)

// Banner is the name written into the generated header comment.
const Banner = "parcelable-generator"

const skeletonText = `
    /**************************************************************************
     * Code to make this class Parcelable. Generated by {{.Banner}}
     */

    public static final Parcelable.Creator<{{.ClassName}}> CREATOR = new Creator();

    /**
     * Default constructor, needed for Jackson. Remove if necessary.
     */
    public {{.ClassName}}() {
    }

    /**
     * Reconstruct from Parcel
     */
    public {{.ClassName}}(Parcel in) {
{{.Read}}
    }

    @Override
    public void writeToParcel(Parcel out, int flags) {
{{.Write}}
    }

    @Override
    public int describeContents() {
        return 0;
    }

    private static class Creator implements Parcelable.Creator<{{.ClassName}}> {
        public {{.ClassName}} createFromParcel(Parcel source) {
            return new {{.ClassName}}(source);
        }

        public {{.ClassName}}[] newArray(int size) {
            return new {{.ClassName}}[size];
        }
    }

    /**************************************************************************
     * Parcelable codes end
     */
`

var skeleton = template.Must(template.New("parcelable").Option("missingkey=error").Parse(skeletonText))

// skeletonData holds the values substituted into the skeleton.
type skeletonData struct {
	Banner    string
	ClassName string
	Read      string
	Write     string
}

// Assemble places the normalized read and write blocks into the skeleton.
// The class name is substituted at every occurrence, each block exactly
// once.
func Assemble(className string, read, write []string) (string, error) {
	data := skeletonData{
		Banner:    Banner,
		ClassName: className,
		Read:      strings.Join(read, "\n"),
		Write:     strings.Join(write, "\n"),
	}

	var sb strings.Builder
	if err := skeleton.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return sb.String(), nil
}
