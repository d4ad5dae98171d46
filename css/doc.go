// Package css reads, composes and writes stylesheets and checks that every
// selector in them can be reproduced by the selector builder.
package css
